package fintab

import (
	"github.com/tsawler/fintab/classify"
	"github.com/tsawler/fintab/hybrid"
	"github.com/tsawler/fintab/reader"
)

// ExtractOptions holds configuration for table extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Context capture depth around each table
	contextLines int

	// Context capture depth around OCR-recovered regions
	ocrContextLines int

	// Identifier embedded in OCR table IDs
	documentID string

	// Pages with fewer tables than this are routed through OCR
	minTablesPerPage int

	// OCR tier
	ocrEnabled  bool
	ocrLanguage string
	dpi         float64

	// Classification rules (nil means the built-in financial rules)
	rules *classify.Ruleset

	// Ruling-line source for lattice detection (nil means none)
	rulings reader.RulingSource
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:            nil, // nil means all pages
		contextLines:     hybrid.DefaultContextLines,
		ocrContextLines:  hybrid.DefaultOCRContextLines,
		minTablesPerPage: 1,
		dpi:              hybrid.DefaultDPI,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		contextLines:     o.contextLines,
		ocrContextLines:  o.ocrContextLines,
		documentID:       o.documentID,
		minTablesPerPage: o.minTablesPerPage,
		ocrEnabled:       o.ocrEnabled,
		ocrLanguage:      o.ocrLanguage,
		dpi:              o.dpi,
		rules:            o.rules,
		rulings:          o.rulings,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
