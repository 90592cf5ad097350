// Package imaging normalizes sprite artwork fetched from the reference API
// before it is cached: formats are validated by sniffing bytes, oversized
// images are downscaled, and everything is re-encoded as PNG so transparency
// survives.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// MaxDimension is the maximum width or height for cached sprites.
const MaxDimension = 256

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// ProcessResult contains the processed sprite data.
type ProcessResult struct {
	Data []byte
	MIME string
}

// Process reads sprite data, validates the format by sniffing bytes,
// downscales if larger than MaxDimension, and re-encodes as PNG.
func Process(r io.Reader) (*ProcessResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading sprite data: %w", err)
	}

	// Sniff actual MIME type from bytes (not trusting upstream headers).
	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported sprite format: %s (only PNG and JPEG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding sprite: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}

	return &ProcessResult{
		Data: buf.Bytes(),
		MIME: "image/png",
	}, nil
}

// downscale resizes the image so neither dimension exceeds maxDim, preserving
// aspect ratio. Uses Catmull-Rom interpolation. Returns the original image if
// already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
}
