package model

// ExtractionResult is the envelope returned by every extraction entry point.
// It is always well formed: callers can marshal it even when Success is
// false. Errors collects tier-level failure messages; a tier that errored is
// treated as having produced zero tables.
type ExtractionResult struct {
	Success   bool     `json:"success"`
	Tables    []*Table `json:"tables"`
	PageCount int      `json:"page_count"`
	Errors    []string `json:"errors"`

	// Stats summarizes the hybrid run; nil for single-pipeline results.
	Stats *Stats `json:"extraction_stats,omitempty"`
}

// NewExtractionResult returns a successful, empty result with initialized
// collections so JSON output contains arrays rather than nulls.
func NewExtractionResult() *ExtractionResult {
	return &ExtractionResult{
		Success: true,
		Tables:  []*Table{},
		Errors:  []string{},
	}
}

// AddError records a tier-level error message.
func (r *ExtractionResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// TablesOnPage returns how many tables the result holds for a page.
func (r *ExtractionResult) TablesOnPage(page int) int {
	n := 0
	for _, t := range r.Tables {
		if t.Page == page {
			n++
		}
	}
	return n
}

// Stats summarizes a hybrid extraction run.
type Stats struct {
	// TextTables counts tables produced by the lattice/stream pipeline.
	TextTables int `json:"text_tables"`
	// OCRTables counts tables produced by the OCR tier.
	OCRTables int `json:"ocr_tables"`
	// OCRPages lists the pages that were routed through OCR.
	OCRPages []int `json:"pages_with_ocr"`
}

// TextResult is the output of plain-text extraction: the full document text
// plus per-page text, pages joined by blank lines.
type TextResult struct {
	Text      string     `json:"text"`
	PageCount int        `json:"page_count"`
	Pages     []PageText `json:"pages"`
}

// PageText is one page's plain text.
type PageText struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}
