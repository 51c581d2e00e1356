package media

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkpress/metal/env"
	"github.com/inkpress/pkg/images"
	"github.com/inkpress/pkg/portal"
)

const MaxWidth = 1600
const WebpQuality = 80

// Transport is the remote side of the pipeline. Implementations must be safe
// to Quit after a partial failure.
type Transport interface {
	EnsureDir(dir string) error
	Store(name string, content io.Reader) error
	Reset() error
	Quit() error
}

type DialFunc func(media env.MediaEnvironment) (Transport, error)

// Uploader optimizes a locally-buffered image and transfers it to the remote
// media server, returning the public URL of the stored copy. Local temp files
// are removed on every exit path.
type Uploader struct {
	media env.MediaEnvironment
	dial  DialFunc
}

func MakeUploader(media env.MediaEnvironment) *Uploader {
	return &Uploader{media: media, dial: DialFTP}
}

// MakeUploaderWithDialer swaps the FTP dialer for a custom Transport factory.
func MakeUploaderWithDialer(media env.MediaEnvironment, dial DialFunc) *Uploader {
	return &Uploader{media: media, dial: dial}
}

func (u *Uploader) Upload(dir, localPath string) (string, error) {
	fileName := fmt.Sprintf("%d-%s.webp", time.Now().UnixMilli(), uuid.NewString())
	optimizedPath := localPath + ".opt.webp"

	var err error
	var transport Transport

	// Cleanup runs no matter where the pipeline stops, a misconfiguration
	// included; failures here are logged and never override the primary
	// outcome.
	defer func() {
		if transport != nil {
			if quitErr := transport.Quit(); quitErr != nil {
				slog.Warn("media upload: closing remote connection failed", "error", quitErr)
			}
		}

		removeQuietly(localPath)
		removeQuietly(optimizedPath)
	}()

	if missing := u.media.MissingSettings(); len(missing) > 0 {
		return "", fmt.Errorf("media uploader is not configured: missing %s", strings.Join(missing, ", "))
	}

	if transport, err = u.dial(u.media); err != nil {
		return "", err
	}

	if err = transport.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure remote directory %s: %w", dir, err)
	}

	if err = images.Transcode(localPath, optimizedPath, MaxWidth, WebpQuality); err != nil {
		return "", err
	}

	content, err := os.Open(optimizedPath)
	if err != nil {
		return "", fmt.Errorf("open optimized file %s: %w", optimizedPath, err)
	}

	err = transport.Store(fileName, content)
	portal.CloseWithLog(content)

	if err != nil {
		return "", fmt.Errorf("transfer %s: %w", fileName, err)
	}

	if resetErr := transport.Reset(); resetErr != nil {
		slog.Warn("media upload: could not return to remote root", "error", resetErr)
	}

	return u.publicURL(dir, fileName), nil
}

func (u *Uploader) publicURL(dir, fileName string) string {
	base := strings.TrimRight(u.media.BaseURL, "/")

	return base + "/" + strings.Trim(dir, "/") + "/" + fileName
}

func removeQuietly(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("media upload: could not remove temp file", "path", path, "error", err)
	}
}
