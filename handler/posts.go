package handler

import (
	baseHttp "net/http"

	"github.com/inkpress/database"
	"github.com/inkpress/database/repository"
	"github.com/inkpress/database/repository/pagination"
	"github.com/inkpress/handler/paginate"
	"github.com/inkpress/handler/payload"
	"github.com/inkpress/pkg/endpoint"
	"github.com/inkpress/pkg/portal"
)

type PostsHandler struct {
	Posts repository.Posts
}

func MakePostsHandler(posts repository.Posts) PostsHandler {
	return PostsHandler{
		Posts: posts,
	}
}

func (h PostsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	query := r.URL.Query()
	mode := repository.ParseListMode(query.Get("mode"))

	posts, err := h.Posts.GetAll(mode, paginate.MakeFrom(query))
	if err != nil {
		return endpoint.LogInternalError("could not list posts", err)
	}

	page := pagination.HydratePagination(posts, payload.GetPostResponse)

	resp := endpoint.MakeNoCacheResponse(w, r)
	if err := resp.RespondOk(page); err != nil {
		return endpoint.LogInternalError("could not encode posts page", err)
	}

	return nil
}

func (h PostsHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)
	if slug == "" {
		return endpoint.BadRequestError("slug is required")
	}

	post, err := h.Posts.FindBySlug(slug)
	if err != nil {
		return endpoint.LogInternalError("could not fetch the post", err)
	}

	if post == nil {
		return endpoint.NotFound("post not found")
	}

	return h.respondWithPost(w, r, post)
}

func (h PostsHandler) ShowById(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)
	if err != nil {
		return endpoint.BadRequestError("a numeric id is required")
	}

	post, err := h.Posts.FindByID(id)
	if err != nil {
		return endpoint.LogInternalError("could not fetch the post", err)
	}

	if post == nil {
		return endpoint.NotFound("post not found")
	}

	return h.respondWithPost(w, r, post)
}

func (h PostsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	body, closer, err := endpoint.ParseRequestBody[payload.PostRequestBody](r)
	defer closer()

	if err != nil {
		return endpoint.BadRequestError("invalid request body")
	}

	title := payload.ParseOptionalString(body.Title)
	if title == nil {
		return endpoint.BadRequestError("title is required")
	}

	// Explicit slugs are normalized the same way derived ones are, so the
	// stored value always matches what the slug lookup queries for.
	source := title
	if explicit := payload.ParseOptionalString(body.Slug); explicit != nil {
		source = explicit
	}

	post, err := h.Posts.Create(database.PostAttrs{
		Title:        *title,
		Slug:         portal.Slugify(*source),
		Excerpt:      payload.ParseOptionalString(body.Excerpt),
		CoverImage:   payload.ParseOptionalString(body.CoverImage),
		BannerPhrase: payload.ParseOptionalString(body.BannerPhrase),
		AuthorName:   body.GetAuthorName(),
		PublishedAt:  payload.ParseTimestamp(body.PublishedAt),
		Blocks:       payload.NormalizeBlocks(body.Blocks),
	})
	if err != nil {
		return endpoint.LogInternalError("could not create the post", err)
	}

	resp := endpoint.MakeNoCacheResponse(w, r)
	if err := resp.RespondCreated(payload.GetPostResponse(*post)); err != nil {
		return endpoint.LogInternalError("could not encode the created post", err)
	}

	return nil
}

func (h PostsHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)
	if err != nil {
		return endpoint.BadRequestError("a numeric id is required")
	}

	body, closer, err := endpoint.ParseRequestBody[payload.PostRequestBody](r)
	defer closer()

	if err != nil {
		return endpoint.BadRequestError("invalid request body")
	}

	title := payload.ParseOptionalString(body.Title)

	// An explicit slug wins; otherwise a new title re-derives it. Both go
	// through the same normalization the create path uses.
	var slug *string
	if explicit := payload.ParseOptionalString(body.Slug); explicit != nil {
		normalized := portal.Slugify(*explicit)
		slug = &normalized
	} else if title != nil {
		derived := portal.Slugify(*title)
		slug = &derived
	}

	attrs := database.PostUpdateAttrs{
		Title:        title,
		Slug:         slug,
		Excerpt:      payload.ParseOptionalString(body.Excerpt),
		CoverImage:   payload.ParseOptionalString(body.CoverImage),
		BannerPhrase: payload.ParseOptionalString(body.BannerPhrase),
		AuthorName:   body.GetAuthorName(),
	}

	if body.PublishedAt != nil {
		attrs.PublishedAt = payload.ParseTimestamp(body.PublishedAt)
		attrs.HasPublishedAt = true
	}

	if body.Blocks != nil {
		attrs.Blocks = payload.NormalizeBlocks(body.Blocks)
		attrs.ReplaceBlocks = true
	}

	post, err := h.Posts.Update(id, attrs)
	if err != nil {
		return endpoint.LogInternalError("could not update the post", err)
	}

	if post == nil {
		return endpoint.NotFound("post not found")
	}

	return h.respondWithPost(w, r, post)
}

func (h PostsHandler) Destroy(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	id, err := payload.GetIDFrom(r)
	if err != nil {
		return endpoint.BadRequestError("a numeric id is required")
	}

	deleted, err := h.Posts.Delete(id)
	if err != nil {
		return endpoint.LogInternalError("could not delete the post", err)
	}

	if !deleted {
		return endpoint.NotFound("post not found")
	}

	resp := endpoint.MakeNoCacheResponse(w, r)
	if err := resp.RespondOk(payload.DeleteResponse{Ok: true}); err != nil {
		return endpoint.LogInternalError("could not encode the delete response", err)
	}

	return nil
}

func (h PostsHandler) respondWithPost(w baseHttp.ResponseWriter, r *baseHttp.Request, post *database.Post) *endpoint.ApiError {
	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.GetPostResponse(*post)); err != nil {
		return endpoint.LogInternalError("could not encode the post", err)
	}

	return nil
}
