package images

import (
	stdimage "image"
	"io"

	"github.com/rwcarlsen/goexif/exif"
)

// readOrientation extracts the EXIF orientation tag, defaulting to 1
// (upright) for files without EXIF data, such as PNGs.
func readOrientation(r io.Reader) int {
	meta, err := exif.Decode(r)
	if err != nil {
		return 1
	}

	tag, err := meta.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil || orientation < 1 || orientation > 8 {
		return 1
	}

	return orientation
}

func applyOrientation(img stdimage.Image, orientation int) stdimage.Image {
	switch orientation {
	case 2:
		return transform(img, func(w, h int) stdimage.Rectangle { return stdimage.Rect(0, 0, w, h) }, func(x, y, w, h int) (int, int) {
			return w - 1 - x, y
		})
	case 3:
		return transform(img, func(w, h int) stdimage.Rectangle { return stdimage.Rect(0, 0, w, h) }, func(x, y, w, h int) (int, int) {
			return w - 1 - x, h - 1 - y
		})
	case 4:
		return transform(img, func(w, h int) stdimage.Rectangle { return stdimage.Rect(0, 0, w, h) }, func(x, y, w, h int) (int, int) {
			return x, h - 1 - y
		})
	case 5:
		return transform(img, func(w, h int) stdimage.Rectangle { return stdimage.Rect(0, 0, h, w) }, func(x, y, w, h int) (int, int) {
			return y, x
		})
	case 6:
		return transform(img, func(w, h int) stdimage.Rectangle { return stdimage.Rect(0, 0, h, w) }, func(x, y, w, h int) (int, int) {
			return h - 1 - y, x
		})
	case 7:
		return transform(img, func(w, h int) stdimage.Rectangle { return stdimage.Rect(0, 0, h, w) }, func(x, y, w, h int) (int, int) {
			return h - 1 - y, w - 1 - x
		})
	case 8:
		return transform(img, func(w, h int) stdimage.Rectangle { return stdimage.Rect(0, 0, h, w) }, func(x, y, w, h int) (int, int) {
			return y, w - 1 - x
		})
	default:
		return img
	}
}

// transform copies src into a new RGBA image whose bounds come from rect and
// whose pixel placement comes from move, which maps a source (x, y) offset to
// its destination offset given the source width and height.
func transform(src stdimage.Image, rect func(w, h int) stdimage.Rectangle, move func(x, y, w, h int) (int, int)) stdimage.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	dst := stdimage.NewRGBA(rect(w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := move(x, y, w, h)
			dst.Set(dx, dy, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return dst
}
