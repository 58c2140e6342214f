//go:build ocr

package ocr

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Renderer rasterizes PDF pages via MuPDF.
type Renderer struct {
	doc *fitz.Document
}

// OpenRenderer opens a PDF file for rasterization. The returned Renderer
// must be closed.
func OpenRenderer(path string) (*Renderer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for rasterization: %w", err)
	}
	return &Renderer{doc: doc}, nil
}

// Close releases the rasterizer resources.
func (r *Renderer) Close() error {
	if r.doc != nil {
		err := r.doc.Close()
		r.doc = nil
		return err
	}
	return nil
}

// Render rasterizes a 1-indexed page at the given resolution.
func (r *Renderer) Render(page int, dpi float64) (image.Image, error) {
	if page < 1 || page > r.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", page, r.doc.NumPage())
	}

	// go-fitz pages are 0-indexed.
	img, err := r.doc.ImageDPI(page-1, dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize page %d: %w", page, err)
	}
	return img, nil
}
