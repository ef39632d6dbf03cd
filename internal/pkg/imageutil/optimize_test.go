package imageutil

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyImage produces an image that compresses poorly, so downscaling
// actually changes the encoded size.
func noisyImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x*7 + y*13) % 256),
				G: uint8((x * y) % 256),
				B: uint8((x + y*31) % 256),
				A: 255,
			})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image, quality int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

func TestOptimize_NeverRegressesSize(t *testing.T) {
	inputs := map[string][]byte{
		"tiny.png":  encodePNG(t, noisyImage(8, 8)),
		"small.jpg": encodeJPEG(t, noisyImage(64, 48), 50),
		"wide.jpeg": encodeJPEG(t, noisyImage(2400, 600), 95),
	}

	for name, data := range inputs {
		res, err := Optimize(data, name, Options{})
		require.NoError(t, err, name)
		assert.LessOrEqual(t, len(res.Data), len(data), name)
	}
}

func TestOptimize_DownscalesWideImages(t *testing.T) {
	data := encodeJPEG(t, noisyImage(2400, 1200), 95)

	res, err := Optimize(data, "banner.jpg", Options{MaxWidth: 800})
	require.NoError(t, err)
	require.True(t, res.Compressed)
	assert.Equal(t, "image/jpeg", res.ContentType)

	img, _, err := image.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	// Aspect ratio preserved
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestOptimize_KeepsOriginalWhenNotSmaller(t *testing.T) {
	// A tiny flat png re-encodes to roughly the same size; the original
	// must come back untouched rather than a larger re-encode.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	data := encodePNG(t, img)

	res, err := Optimize(data, "dot.png", Options{})
	require.NoError(t, err)
	if !res.Compressed {
		assert.Equal(t, data, res.Data)
		assert.Equal(t, "image/png", res.ContentType)
	}
	assert.LessOrEqual(t, len(res.Data), len(data))
}

func TestOptimize_FailureModes(t *testing.T) {
	_, err := Optimize([]byte("not an image"), "broken.jpg", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecodeFailed))

	_, err = Optimize([]byte{0x00}, "photo.webp", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Optimize([]byte{0x00}, "photo.avif", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestFileSizeString(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{2621440, "2.5 MB"},
		{1234, "1.21 KB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileSizeString(tt.in), "FileSizeString(%d)", tt.in)
	}
}

func TestStats(t *testing.T) {
	s := Stats(1000, 600)
	assert.Equal(t, int64(400), s.SavedBytes)
	assert.Equal(t, 40.0, s.SavedPercent)

	// Never negative when "compression" grew the file
	s = Stats(500, 700)
	assert.Equal(t, int64(0), s.SavedBytes)
	assert.Equal(t, 0.0, s.SavedPercent)
}
