// Package qr renders links as square QR code PNG files.
package qr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// Error represents a failure producing a QR code image
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("qr error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("qr error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Generator encodes links at low error correction with a four-module quiet zone
type Generator struct{}

// NewGenerator returns a Generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Image encodes link one pixel per module and scales the result to a
// dim×dim grayscale image with nearest-neighbour sampling.
func (g *Generator) Image(link string, dim int) (*image.Gray, error) {
	if link == "" {
		return nil, &Error{Message: "link is empty"}
	}
	if dim <= 0 {
		return nil, &Error{Message: fmt.Sprintf("dimension must be positive, got %d", dim)}
	}

	code, err := qrcode.New(link, qrcode.Low)
	if err != nil {
		return nil, &Error{Message: "failed to encode link", Cause: err}
	}

	src := code.Image(-1)
	dst := image.NewGray(image.Rect(0, 0, dim, dim))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Generate writes the QR code for link to path as a PNG, overwriting any existing file
func (g *Generator) Generate(link string, dim int, path string) error {
	img, err := g.Image(link, dim)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &Error{Message: "failed to create output directory", Cause: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &Error{Message: fmt.Sprintf("failed to create %s", path), Cause: err}
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return &Error{Message: "failed to encode PNG", Cause: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Message: fmt.Sprintf("failed to close %s", path), Cause: err}
	}
	return nil
}
