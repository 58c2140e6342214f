//go:build !ocr

// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires MuPDF and Tesseract to be installed. On macOS:
//
//	brew install mupdf tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install libmupdf-dev tesseract-ocr libtesseract-dev

package ocr

import (
	"errors"
	"image"
)

// Enabled reports whether OCR support was compiled in.
const Enabled = false

// ErrNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}

// Tokens returns an error indicating OCR support is not enabled.
func (c *Client) Tokens(img image.Image) ([]Token, error) {
	return nil, ErrNotEnabled
}

// Renderer is a stub rasterizer that returns errors for all operations.
type Renderer struct{}

// OpenRenderer returns an error indicating OCR support is not enabled.
func OpenRenderer(path string) (*Renderer, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op for the stub renderer.
// It is safe to call on a nil renderer.
func (r *Renderer) Close() error {
	return nil
}

// Render returns an error indicating OCR support is not enabled.
func (r *Renderer) Render(page int, dpi float64) (image.Image, error) {
	return nil, ErrNotEnabled
}
