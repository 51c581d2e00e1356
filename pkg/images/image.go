package images

import (
	"bytes"
	"fmt"
	stdimage "image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Decode reads and decodes the image stored at path, applying any EXIF
// orientation the file carries so callers always see upright pixels.
func Decode(path string) (stdimage.Image, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image %s: %w", path, err)
	}

	img, format, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image %s: %w", path, err)
	}

	img = applyOrientation(img, readOrientation(bytes.NewReader(data)))

	return img, format, nil
}

func Resize(src stdimage.Image, width, height int) stdimage.Image {
	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return dst
}

// TargetWidth caps the current width at max without ever upscaling.
func TargetWidth(current, max int) int {
	if max <= 0 || current <= max {
		return current
	}

	return max
}

// Transcode re-encodes the image at src into a webp file at dst, capping the
// width at maxWidth while preserving the aspect ratio.
func Transcode(src, dst string, maxWidth, quality int) error {
	img, _, err := Decode(src)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	width := TargetWidth(bounds.Dx(), maxWidth)

	if width != bounds.Dx() {
		height := (bounds.Dy() * width) / bounds.Dx()
		img = Resize(img, width, height)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create optimized file %s: %w", dst, err)
	}

	if err := encodeWebp(out, img, quality); err != nil {
		_ = out.Close()

		return fmt.Errorf("encode webp %s: %w", dst, err)
	}

	return out.Close()
}

// EncoderSupported reports whether webp encoding is available in this build.
func EncoderSupported() bool {
	return webpEncodeSupported()
}
