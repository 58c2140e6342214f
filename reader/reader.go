package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/tsawler/fintab/lines"
	"github.com/tsawler/fintab/model"
)

// RulingSource supplies ruling-line segments for lattice table detection.
// The built-in reader does not parse vector graphics; callers that have a
// ruling extractor plug it in through this interface.
type RulingSource interface {
	// Rulings returns the ruling segments for a 1-indexed page, in
	// top-left-origin page coordinates.
	Rulings(page int) ([]model.Ruling, error)
}

// Reader provides access to one open PDF document.
type Reader struct {
	path      string
	file      *os.File
	pdf       *pdf.Reader
	dims      []types.Dim
	pageCount int
}

// Open opens and validates a PDF file. The returned Reader must be closed.
func Open(path string) (*Reader, error) {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF text layer: %w", err)
	}

	return &Reader{
		path:      path,
		file:      f,
		pdf:       r,
		dims:      dims,
		pageCount: pageCount,
	}, nil
}

// Close releases the underlying file handle. Safe to call more than once.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Path returns the path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// PageCount returns the number of pages.
func (r *Reader) PageCount() int {
	return r.pageCount
}

// PageSize returns the width and height of a 1-indexed page in points.
func (r *Reader) PageSize(page int) (width, height float64, err error) {
	if page < 1 || page > len(r.dims) {
		return 0, 0, fmt.Errorf("page %d out of range (1-%d)", page, len(r.dims))
	}
	d := r.dims[page-1]
	return d.Width, d.Height, nil
}

// Words extracts the positioned word tokens of a 1-indexed page, in
// top-left-origin coordinates with NFKC-normalized text. Pages without a
// text layer (scanned pages) yield an empty slice.
func (r *Reader) Words(page int) ([]model.Word, error) {
	if page < 1 || page > r.pageCount {
		return nil, fmt.Errorf("page %d out of range (1-%d)", page, r.pageCount)
	}

	_, height, err := r.PageSize(page)
	if err != nil {
		return nil, err
	}

	p := r.pdf.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}

	// Malformed content streams can panic deep inside the pdf library;
	// contain that to an error so a bad page does not abort the document.
	var texts []pdf.Text
	err = func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("text layer parse failed on page %d: %v", page, rec)
			}
		}()
		texts = p.Content().Text
		return nil
	}()
	if err != nil {
		return nil, err
	}

	return assembleWords(texts, height), nil
}

// Text returns the plain text of a 1-indexed page: reconstructed lines
// joined with newlines.
func (r *Reader) Text(page int) (string, error) {
	words, err := r.Words(page)
	if err != nil {
		return "", err
	}

	reconstructed := lines.Reconstruct(words)
	parts := make([]string, len(reconstructed))
	for i, l := range reconstructed {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n"), nil
}
