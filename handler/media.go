package handler

import (
	"fmt"
	"io"
	baseHttp "net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inkpress/database"
	"github.com/inkpress/database/repository"
	"github.com/inkpress/handler/payload"
	"github.com/inkpress/pkg/endpoint"
	"github.com/inkpress/pkg/portal"
)

const MaxUploadSize = 20 << 20 // 20MB

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Uploader is the media pipeline contract the handler depends on.
type Uploader interface {
	Upload(dir, localPath string) (string, error)
}

type MediaHandler struct {
	Posts    repository.Posts
	Uploader Uploader
	TmpDir   string
}

func MakeMediaHandler(posts repository.Posts, uploader Uploader, tmpDir string) MediaHandler {
	return MediaHandler{
		Posts:    posts,
		Uploader: uploader,
		TmpDir:   tmpDir,
	}
}

// UploadCover stores an optimized cover image under blog/covers and, when the
// post exists, points its coverImage at the new URL. An unknown id still
// uploads and returns the URL so the admin UI can attach it later.
func (h MediaHandler) UploadCover(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)
	if err != nil {
		return endpoint.BadRequestError("a numeric id is required")
	}

	localPath, apiErr := h.bufferUpload(w, r, "cover")
	if apiErr != nil {
		return apiErr
	}

	url, err := h.Uploader.Upload("blog/covers", localPath)
	if err != nil {
		return endpoint.LogInternalError("could not upload the cover image", err)
	}

	if _, err = h.Posts.Update(id, database.PostUpdateAttrs{CoverImage: &url}); err != nil {
		return endpoint.LogInternalError("could not attach the cover image", err)
	}

	return h.respondWithURL(w, r, url)
}

// UploadBlockImage stores an optimized image under the post's own directory.
// The URL is returned for the caller to place inside an image block.
func (h MediaHandler) UploadBlockImage(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)
	if err != nil {
		return endpoint.BadRequestError("a numeric id is required")
	}

	localPath, apiErr := h.bufferUpload(w, r, "block")
	if apiErr != nil {
		return apiErr
	}

	url, err := h.Uploader.Upload(fmt.Sprintf("blog/%d", id), localPath)
	if err != nil {
		return endpoint.LogInternalError("could not upload the block image", err)
	}

	return h.respondWithURL(w, r, url)
}

// bufferUpload moves the multipart file into the local temp directory under a
// collision-resistant name and returns its path. The pipeline owns removal of
// the buffered file from here on.
func (h MediaHandler) bufferUpload(w baseHttp.ResponseWriter, r *baseHttp.Request, kind string) (string, *endpoint.ApiError) {
	r.Body = baseHttp.MaxBytesReader(w, r.Body, MaxUploadSize)

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		return "", endpoint.BadRequestError("invalid multipart body or file too large")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", endpoint.BadRequestError("file is required")
	}

	defer portal.CloseWithLog(file)

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return "", endpoint.BadRequestError("unsupported file type: only jpg, jpeg, png and webp are accepted")
	}

	if err = os.MkdirAll(h.TmpDir, 0o755); err != nil {
		return "", endpoint.LogInternalError("could not prepare the temp directory", err)
	}

	name := fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), kind, filepath.Base(header.Filename))
	localPath := filepath.Join(h.TmpDir, name)

	dst, err := os.Create(localPath)
	if err != nil {
		return "", endpoint.LogInternalError("could not buffer the uploaded file", err)
	}

	_, err = io.Copy(dst, file)
	portal.CloseWithLog(dst)

	if err != nil {
		return "", endpoint.LogInternalError("could not buffer the uploaded file", err)
	}

	return localPath, nil
}

func (h MediaHandler) respondWithURL(w baseHttp.ResponseWriter, r *baseHttp.Request, url string) *endpoint.ApiError {
	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.UploadResponse{Ok: true, URL: url}); err != nil {
		return endpoint.LogInternalError("could not encode the upload response", err)
	}

	return nil
}
