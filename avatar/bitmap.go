// Package avatar renders contact avatars for notifications and chat lists.
//
// A Bitmap owns its pixels. Operations that consume a Bitmap recycle it, and a
// recycled Bitmap reports empty bounds and refuses further work with
// helpers.ErrRecycled. Callers must not reuse an input after passing it to
// Circle.
package avatar

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bluebubbles/helpers"
)

// Bitmap is an owned 32-bit-per-pixel buffer with its origin at (0, 0).
// It implements image.Image.
type Bitmap struct {
	pix *image.NRGBA
}

// NewBitmap allocates a fully transparent width x height bitmap.
// Negative dimensions are treated as zero.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{pix: image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// FromImage copies img into a new Bitmap. The copy is rebased so that
// img.Bounds().Min becomes (0, 0).
func FromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	out := NewBitmap(b.Dx(), b.Dy())
	draw.Draw(out.pix, out.pix.Bounds(), img, b.Min, draw.Src)
	return out
}

// Width returns the width in pixels, or 0 once recycled.
func (b *Bitmap) Width() int {
	if b.IsRecycled() {
		return 0
	}
	return b.pix.Rect.Dx()
}

// Height returns the height in pixels, or 0 once recycled.
func (b *Bitmap) Height() int {
	if b.IsRecycled() {
		return 0
	}
	return b.pix.Rect.Dy()
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	if b.IsRecycled() {
		return image.Rectangle{}
	}
	return b.pix.Rect
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements image.Image. A recycled bitmap is transparent everywhere.
func (b *Bitmap) At(x, y int) color.Color {
	if b.IsRecycled() {
		return color.NRGBA{}
	}
	return b.pix.NRGBAAt(x, y)
}

// Image returns the backing buffer. The buffer is only valid until the
// bitmap is recycled.
func (b *Bitmap) Image() (*image.NRGBA, error) {
	if b.IsRecycled() {
		return nil, helpers.NewOwnershipError("avatar.Bitmap.Image", helpers.ErrRecycled)
	}
	return b.pix, nil
}

// Recycle releases the pixels. It is safe to call more than once.
func (b *Bitmap) Recycle() {
	if b == nil {
		return
	}
	b.pix = nil
}

// IsRecycled reports whether the pixels have been released.
func (b *Bitmap) IsRecycled() bool {
	return b == nil || b.pix == nil
}
