package avatar

import (
	"image"
	"image/draw"

	"github.com/bluebubbles/helpers"
)

// samples is the per-axis supersampling factor used for mask coverage.
const samples = 4

// Circle returns a copy of src clipped to the ellipse inscribed in its
// bounds. Pixels outside the ellipse are fully transparent and the edge is
// anti-aliased. Non-square input yields an ellipse rather than a circle.
//
// src is consumed: it is recycled before Circle returns, and passing it again
// returns helpers.ErrRecycled.
func Circle(src *Bitmap) (*Bitmap, error) {
	if src.IsRecycled() {
		return nil, helpers.NewOwnershipError("avatar.Circle", helpers.ErrRecycled)
	}
	defer src.Recycle()

	w, h := src.Width(), src.Height()
	out := NewBitmap(w, h)
	if w == 0 || h == 0 {
		return out, nil
	}

	draw.DrawMask(out.pix, out.pix.Rect, src.pix, image.Point{}, ovalMask(w, h), image.Point{}, draw.Over)
	return out, nil
}

// ovalMask returns the coverage of the ellipse inscribed in a w x h
// rectangle. Each pixel's alpha is the fraction of its samples x samples
// grid that falls inside the ellipse.
func ovalMask(w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rx, ry := float64(w)/2, float64(h)/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside := 0
			for sy := 0; sy < samples; sy++ {
				dy := (float64(y) + (float64(sy)+0.5)/samples - ry) / ry
				for sx := 0; sx < samples; sx++ {
					dx := (float64(x) + (float64(sx)+0.5)/samples - rx) / rx
					if dx*dx+dy*dy <= 1 {
						inside++
					}
				}
			}
			mask.Pix[y*mask.Stride+x] = uint8(inside * 0xff / (samples * samples))
		}
	}
	return mask
}
