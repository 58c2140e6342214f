package model

import (
	"encoding/json"
	"strings"
)

// Method identifies which extraction tier produced a table.
type Method string

const (
	// MethodLattice marks tables detected from ruling-line graphics.
	MethodLattice Method = "lattice"
	// MethodStream marks tables detected from whitespace alignment.
	MethodStream Method = "stream"
	// MethodOCR marks table regions recovered from a rasterized page.
	MethodOCR Method = "ocr"
)

// Content is the tagged body of an extracted table. Exactly two variants
// exist: Grid (lattice/stream) and OCRText (rasterized-OCR blob).
type Content interface {
	// Text returns a flat text rendering of the table body, used by the
	// classification heuristics.
	Text() string

	isContent()
}

// Grid is a table body as an ordered sequence of rows of cell text.
type Grid [][]string

func (Grid) isContent() {}

// Text joins all cell text with spaces, rows separated by newlines.
func (g Grid) Text() string {
	rows := make([]string, len(g))
	for i, row := range g {
		rows[i] = strings.Join(row, " ")
	}
	return strings.Join(rows, "\n")
}

// RowCount returns the number of rows.
func (g Grid) RowCount() int {
	return len(g)
}

// HeaderRow returns the first row, or nil for an empty grid.
func (g Grid) HeaderRow() []string {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// OCRText is a flattened table body produced by the OCR tier: block tokens
// joined by " | ". No cell structure is recovered for OCR regions.
type OCRText string

func (OCRText) isContent() {}

// Text returns the flattened blob.
func (t OCRText) Text() string {
	return string(t)
}

// Table is one extracted, classified table.
type Table struct {
	// Page is the 1-indexed page number.
	Page int

	// Index is the table's index within its page, per extraction method.
	Index int

	// ID is an optional caller-visible identifier. The OCR tier fills it
	// with "doc{id}_ocr_p{page}_t{index}"; lattice/stream tables leave it
	// empty and are identified by (Page, Index).
	ID string

	// Method tags which tier produced this table.
	Method Method

	// BBox is the table's bounding box in page points.
	BBox BBox

	// Name is the classification label (for example "P&L", "RATIOS"),
	// "UNKNOWN" when no pattern matched.
	Name string

	// Unit is the detected measurement unit label, empty when undetected.
	Unit string

	// Periods are reporting-period labels found in the header row, in
	// original column order.
	Periods []string

	// ContextAbove holds the text lines immediately above the table in
	// natural reading order, ending closest to the table.
	ContextAbove []string

	// ContextBelow holds the text lines immediately below the table in
	// reading order.
	ContextBelow []string

	// Confidence is the extraction quality estimate in [0, 1].
	Confidence float64

	// Content is the table body variant: Grid or OCRText.
	Content Content
}

// tableJSON is the wire form consumed by the ingestion service.
type tableJSON struct {
	Page         int        `json:"page"`
	ID           string     `json:"table_id,omitempty"`
	Index        int        `json:"table_index_on_page"`
	Name         string     `json:"table_name"`
	Unit         *string    `json:"unit"`
	Periods      []string   `json:"periods"`
	Grid         [][]string `json:"raw_table_grid,omitempty"`
	OCRText      string     `json:"ocr_text,omitempty"`
	ContextAbove []string   `json:"context_above_lines"`
	ContextBelow []string   `json:"context_below_lines"`
	Confidence   float64    `json:"confidence"`
	Method       Method     `json:"extraction_method"`
}

// MarshalJSON emits the ingestion wire format: grid tables carry
// raw_table_grid, OCR tables carry ocr_text, and list-valued fields are
// always arrays, never null.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{
		Page:         t.Page,
		ID:           t.ID,
		Index:        t.Index,
		Name:         t.Name,
		Periods:      emptyIfNil(t.Periods),
		ContextAbove: emptyIfNil(t.ContextAbove),
		ContextBelow: emptyIfNil(t.ContextBelow),
		Confidence:   t.Confidence,
		Method:       t.Method,
	}

	if t.Unit != "" {
		unit := t.Unit
		out.Unit = &unit
	}

	switch c := t.Content.(type) {
	case Grid:
		out.Grid = c
	case OCRText:
		out.OCRText = string(c)
	}

	return json.Marshal(out)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
