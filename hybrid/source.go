package hybrid

import (
	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/reader"
	"github.com/tsawler/fintab/tables"
)

// Source supplies page content to the extraction tiers.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the detector input for a 1-indexed page.
	Page(n int) (*tables.PageInput, error)
}

// readerSource adapts a reader.Reader, with an optional ruling source for
// lattice detection, to the Source interface.
type readerSource struct {
	r       *reader.Reader
	rulings reader.RulingSource
}

// NewReaderSource wraps an open PDF reader as a Source. The ruling source
// may be nil; lattice detection then sees no rulings and the stream
// fallback carries the document.
func NewReaderSource(r *reader.Reader, rulings reader.RulingSource) Source {
	return &readerSource{r: r, rulings: rulings}
}

func (s *readerSource) PageCount() int {
	return s.r.PageCount()
}

func (s *readerSource) Page(n int) (*tables.PageInput, error) {
	width, height, err := s.r.PageSize(n)
	if err != nil {
		return nil, err
	}

	words, err := s.r.Words(n)
	if err != nil {
		return nil, err
	}

	var rulings []model.Ruling
	if s.rulings != nil {
		rulings, err = s.rulings.Rulings(n)
		if err != nil {
			return nil, err
		}
	}

	return &tables.PageInput{
		Number:  n,
		Width:   width,
		Height:  height,
		Words:   words,
		Rulings: rulings,
	}, nil
}
