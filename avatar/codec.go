package avatar

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG for Decode
	"image/png"
	"io"

	"github.com/bluebubbles/helpers"
)

// Decode reads a PNG or JPEG contact photo into a new Bitmap.
func Decode(r io.Reader) (*Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avatar: %w", err)
	}
	return FromImage(img), nil
}

// EncodePNG writes b as PNG. b is not consumed.
func EncodePNG(w io.Writer, b *Bitmap) error {
	if b.IsRecycled() {
		return helpers.NewOwnershipError("avatar.EncodePNG", helpers.ErrRecycled)
	}
	if err := png.Encode(w, b.pix); err != nil {
		return fmt.Errorf("failed to encode avatar: %w", err)
	}
	return nil
}
