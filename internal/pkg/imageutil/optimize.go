package imageutil

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// Default optimization parameters
const (
	DefaultMaxWidth = 1920
	DefaultQuality  = 78
)

// Options controls image optimization
type Options struct {
	// MaxWidth is the maximum output width in pixels; wider images are
	// scaled down proportionally. Zero means DefaultMaxWidth.
	MaxWidth int
	// Quality is the JPEG quality factor (1-100). Zero means DefaultQuality.
	Quality int
}

// Result is the outcome of an optimization attempt
type Result struct {
	Data        []byte
	ContentType string
	// Compressed is false when the re-encoded image was not smaller than
	// the input and the original bytes were returned unchanged.
	Compressed bool
}

// Optimization failure classes. Callers that treat optimization as
// best-effort match on these and fall back to the original bytes.
var (
	ErrDecodeFailed      = errors.New("failed to decode image")
	ErrEncodeFailed      = errors.New("failed to encode image")
	ErrUnsupportedFormat = errors.New("no encoder for image format")
)

// Optimize re-encodes an image, scaling it down to opts.MaxWidth when wider,
// choosing the output format from the file extension (png stays png, gif
// stays gif, everything else becomes jpeg at opts.Quality). The result is
// never larger than the input: when re-encoding does not shrink the image
// the original bytes are returned with Compressed=false.
//
// webp and avif inputs cannot be re-encoded (no Go encoder exists for
// either) and fail with ErrUnsupportedFormat.
func Optimize(data []byte, filename string, opts Options) (*Result, error) {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = DefaultMaxWidth
	}
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}

	ext := normalizedExt(filename)
	if ext == "webp" || ext == "avif" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	if img.Bounds().Dx() > opts.MaxWidth {
		// Height 0 preserves the aspect ratio
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	var contentType string
	switch ext {
	case "png":
		err = imaging.Encode(&buf, img, imaging.PNG)
		contentType = "image/png"
	case "gif":
		err = imaging.Encode(&buf, img, imaging.GIF)
		contentType = "image/gif"
	default:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(opts.Quality))
		contentType = "image/jpeg"
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	if buf.Len() >= len(data) {
		return &Result{
			Data:        data,
			ContentType: MimeTypeForExt(ext),
			Compressed:  false,
		}, nil
	}

	return &Result{
		Data:        buf.Bytes(),
		ContentType: contentType,
		Compressed:  true,
	}, nil
}

// MimeTypeForExt maps a supported image extension to its MIME type.
func MimeTypeForExt(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "avif":
		return "image/avif"
	default:
		return "image/jpeg"
	}
}

// FileSizeString formats a byte count for display: "0 Bytes", else scaled
// at 1024 granularity and rounded to at most two decimals, e.g.
// FileSizeString(1536) == "1.5 KB".
func FileSizeString(n int64) string {
	if n == 0 {
		return "0 Bytes"
	}

	units := []string{"Bytes", "KB", "MB", "GB", "TB"}
	i := 0
	v := float64(n)
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}

	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + units[i]
}

// CompressionStats summarizes the effect of an optimization, for logging only
type CompressionStats struct {
	OriginalSize   int64
	CompressedSize int64
	SavedBytes     int64
	SavedPercent   float64
}

// Stats computes compression statistics for an original/compressed pair.
func Stats(originalSize, compressedSize int64) CompressionStats {
	s := CompressionStats{
		OriginalSize:   originalSize,
		CompressedSize: compressedSize,
	}
	if originalSize > compressedSize {
		s.SavedBytes = originalSize - compressedSize
	}
	if originalSize > 0 && s.SavedBytes > 0 {
		s.SavedPercent = math.Round(float64(s.SavedBytes)/float64(originalSize)*1000) / 10
	}
	return s
}

func normalizedExt(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
