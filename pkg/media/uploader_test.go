package media

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inkpress/metal/env"
	"github.com/inkpress/pkg/images"
)

type fakeTransport struct {
	dirs      []string
	stored    []string
	storeErr  error
	ensureErr error
	quits     int
	resets    int
}

func (f *fakeTransport) EnsureDir(dir string) error {
	f.dirs = append(f.dirs, dir)

	return f.ensureErr
}

func (f *fakeTransport) Store(name string, content io.Reader) error {
	if f.storeErr != nil {
		return f.storeErr
	}

	if _, err := io.Copy(io.Discard, content); err != nil {
		return err
	}

	f.stored = append(f.stored, name)

	return nil
}

func (f *fakeTransport) Reset() error {
	f.resets++

	return nil
}

func (f *fakeTransport) Quit() error {
	f.quits++

	return nil
}

func testMediaEnv(tmpDir string) env.MediaEnvironment {
	return env.MediaEnvironment{
		FtpHost:     "ftp.example.test",
		FtpUser:     "user",
		FtpPassword: "pass",
		BaseURL:     "https://cdn.example.test",
		TmpDir:      tmpDir,
	}
}

func writeTestImage(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 90, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	path := filepath.Join(dir, "upload_cover_source.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write test image: %v", err)
	}

	return path
}

func TestUploadSuccess(t *testing.T) {
	if !images.EncoderSupported() {
		t.Skip("webp encoder requires cgo")
	}

	tmpDir := t.TempDir()
	localPath := writeTestImage(t, tmpDir)

	transport := &fakeTransport{}
	uploader := MakeUploaderWithDialer(testMediaEnv(tmpDir), func(env.MediaEnvironment) (Transport, error) {
		return transport, nil
	})

	url, err := uploader.Upload("blog/covers", localPath)
	if err != nil {
		t.Fatalf("upload err: %v", err)
	}

	if !strings.HasPrefix(url, "https://cdn.example.test/blog/covers/") || !strings.HasSuffix(url, ".webp") {
		t.Fatalf("unexpected url %q", url)
	}

	if len(transport.dirs) != 1 || transport.dirs[0] != "blog/covers" {
		t.Fatalf("expected the target directory ensured, got %v", transport.dirs)
	}

	if len(transport.stored) != 1 || !strings.HasSuffix(transport.stored[0], ".webp") {
		t.Fatalf("expected one stored webp file, got %v", transport.stored)
	}

	if transport.resets != 1 || transport.quits != 1 {
		t.Fatalf("expected reset and quit once, got %d/%d", transport.resets, transport.quits)
	}

	assertTempFilesGone(t, localPath)
}

func TestUploadTransferFailureStillCleansUp(t *testing.T) {
	if !images.EncoderSupported() {
		t.Skip("webp encoder requires cgo")
	}

	tmpDir := t.TempDir()
	localPath := writeTestImage(t, tmpDir)

	transport := &fakeTransport{storeErr: errors.New("551 refused")}
	uploader := MakeUploaderWithDialer(testMediaEnv(tmpDir), func(env.MediaEnvironment) (Transport, error) {
		return transport, nil
	})

	if _, err := uploader.Upload("blog/covers", localPath); err == nil {
		t.Fatal("expected the transfer failure to propagate")
	}

	if transport.quits != 1 {
		t.Fatalf("expected the connection closed, got %d quits", transport.quits)
	}

	assertTempFilesGone(t, localPath)
}

func TestUploadDialFailureCleansUpSource(t *testing.T) {
	tmpDir := t.TempDir()
	localPath := writeTestImage(t, tmpDir)

	uploader := MakeUploaderWithDialer(testMediaEnv(tmpDir), func(env.MediaEnvironment) (Transport, error) {
		return nil, errors.New("connection refused")
	})

	if _, err := uploader.Upload("blog/covers", localPath); err == nil {
		t.Fatal("expected the dial failure to propagate")
	}

	assertTempFilesGone(t, localPath)
}

func TestUploadCorruptImageFails(t *testing.T) {
	tmpDir := t.TempDir()

	localPath := filepath.Join(tmpDir, "not_an_image.png")
	if err := os.WriteFile(localPath, []byte("definitely not pixels"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	transport := &fakeTransport{}
	uploader := MakeUploaderWithDialer(testMediaEnv(tmpDir), func(env.MediaEnvironment) (Transport, error) {
		return transport, nil
	})

	if _, err := uploader.Upload("blog/covers", localPath); err == nil {
		t.Fatal("expected the decode failure to propagate")
	}

	if len(transport.stored) != 0 {
		t.Fatalf("expected nothing stored, got %v", transport.stored)
	}

	assertTempFilesGone(t, localPath)
}

func TestUploadMissingConfigFailsWithoutDialAndCleansUp(t *testing.T) {
	tmpDir := t.TempDir()
	localPath := writeTestImage(t, tmpDir)

	dialed := false
	uploader := MakeUploaderWithDialer(env.MediaEnvironment{}, func(env.MediaEnvironment) (Transport, error) {
		dialed = true

		return &fakeTransport{}, nil
	})

	_, err := uploader.Upload("blog/covers", localPath)
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("expected a configuration error, got %v", err)
	}

	if dialed {
		t.Fatal("expected no dial before configuration passes")
	}

	// A config failure still removes the buffered file, like every other
	// failure in the pipeline.
	assertTempFilesGone(t, localPath)
}

func assertTempFilesGone(t *testing.T, localPath string) {
	t.Helper()

	if _, err := os.Stat(localPath); !os.IsNotExist(err) {
		t.Fatalf("expected the source temp file removed, stat err: %v", err)
	}

	if _, err := os.Stat(localPath + ".opt.webp"); !os.IsNotExist(err) {
		t.Fatalf("expected the optimized temp file removed, stat err: %v", err)
	}
}
