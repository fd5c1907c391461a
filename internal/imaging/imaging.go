package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Support GIF
	_ "image/jpeg" // Support JPEG
	"image/png"
	"io"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Support WEBP

	"pixelwall/internal/entity"
)

// Extensions accepted for artwork and profile photo uploads.
var allowedExtensions = map[string]struct{}{
	".gif":  {},
	".png":  {},
	".webp": {},
	".jpg":  {},
	".jpeg": {},
}

// Normalized is the canonical form of an uploaded image: RGBA pixels
// re-encoded as PNG, plus the display filename.
type Normalized struct {
	Data     []byte
	Filename string
}

// AllowedExtension reports whether the filename carries a supported extension.
func AllowedExtension(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Normalize validates and decodes an uploaded image, converts it to RGBA and
// re-encodes it as PNG. JPEG inputs keep their base name but are renamed to
// .png for display, since the stored payload is always PNG.
func Normalize(filename string, r io.Reader) (*Normalized, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: extension %q", entity.ErrInvalidFormat, ext)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFormat, err)
	}

	data, err := encodePNG(toRGBA(img))
	if err != nil {
		return nil, err
	}

	displayName := filepath.Base(filename)
	if ext == ".jpg" || ext == ".jpeg" {
		displayName = strings.TrimSuffix(displayName, filepath.Ext(displayName)) + ".png"
	}

	return &Normalized{Data: data, Filename: displayName}, nil
}

// Thumbnail decodes an uploaded image and scales it to the given bounds,
// returning PNG bytes. Used for profile photos.
func Thumbnail(filename string, r io.Reader, width, height int) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: extension %q", entity.ErrInvalidFormat, ext)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFormat, err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	return encodePNG(scaled)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
