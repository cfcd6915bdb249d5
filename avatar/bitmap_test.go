package avatar

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/bluebubbles/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBitmap(t *testing.T) {
	b := NewBitmap(3, 2)

	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, image.Rect(0, 0, 3, 2), b.Bounds())
	assert.Equal(t, color.NRGBA{}, b.At(1, 1))
	assert.Equal(t, color.NRGBAModel, b.ColorModel())

	neg := NewBitmap(-4, 2)
	assert.Equal(t, 0, neg.Width())
	assert.Equal(t, 2, neg.Height())
}

func TestFromImage_RebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 14, 23))
	src.Set(10, 20, color.RGBA{G: 0xff, A: 0xff})

	b := FromImage(src)

	assert.Equal(t, image.Rect(0, 0, 4, 3), b.Bounds())
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, b.At(0, 0))
}

func TestBitmap_Recycle(t *testing.T) {
	b := NewBitmap(2, 2)

	img, err := b.Image()
	require.NoError(t, err)
	assert.Equal(t, 2, img.Rect.Dx())

	b.Recycle()
	b.Recycle()

	assert.True(t, b.IsRecycled())
	assert.Equal(t, 0, b.Width())
	assert.Equal(t, 0, b.Height())
	assert.Equal(t, color.NRGBA{}, b.At(0, 0))

	_, err = b.Image()
	assert.ErrorIs(t, err, helpers.ErrRecycled)

	var nilBitmap *Bitmap
	assert.True(t, nilBitmap.IsRecycled())
	assert.NotPanics(t, nilBitmap.Recycle)
}

func TestDecodeAndEncode(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	src.SetNRGBA(2, 1, color.NRGBA{B: 0xff, A: 0xff})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	b, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6, b.Width())
	assert.Equal(t, 4, b.Height())
	assert.Equal(t, color.NRGBA{B: 0xff, A: 0xff}, b.At(2, 1))

	var out bytes.Buffer
	require.NoError(t, EncodePNG(&out, b))

	round, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), round.Bounds())
	assert.False(t, b.IsRecycled(), "encoding does not consume the bitmap")
}

func TestDecode_JPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	b, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, b.Width())
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode avatar")
}

func TestEncodePNG_Recycled(t *testing.T) {
	b := NewBitmap(1, 1)
	b.Recycle()

	err := EncodePNG(&bytes.Buffer{}, b)
	assert.ErrorIs(t, err, helpers.ErrRecycled)
}
