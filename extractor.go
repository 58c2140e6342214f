package fintab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/fintab/classify"
	"github.com/tsawler/fintab/hybrid"
	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/ocr"
	"github.com/tsawler/fintab/reader"
)

// Extractor provides a fluent interface for extracting tables and text from
// financial-disclosure PDFs. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	filename string

	// Reader lifecycle
	reader       *reader.Reader
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	result, err := fintab.Open("results.pdf").Pages(1, 3, 5).Tables()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	result, err := fintab.Open("results.pdf").PageRange(5, 10).Tables()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// ContextLines sets how many text lines are captured above and below each
// table for classification context.
//
// Example:
//
//	result, err := fintab.Open("results.pdf").ContextLines(5).Tables()
func (e *Extractor) ContextLines(n int) *Extractor {
	newExt := e.clone()
	newExt.options.contextLines = n
	return newExt
}

// OCRContextLines sets how many text-layer lines are captured around each
// OCR-recovered region. The default is deeper than ContextLines because
// classification of noisy OCR text leans on the surrounding text layer.
func (e *Extractor) OCRContextLines(n int) *Extractor {
	newExt := e.clone()
	newExt.options.ocrContextLines = n
	return newExt
}

// DocumentID sets the identifier embedded in OCR table IDs.
//
// Example:
//
//	result, err := fintab.Open("results.pdf").DocumentID("Q1FY26").WithOCR().Tables()
func (e *Extractor) DocumentID(id string) *Extractor {
	newExt := e.clone()
	newExt.options.documentID = id
	return newExt
}

// MinTablesPerPage sets the per-page table count below which a page is
// routed through the OCR tier. The default is 1: any page where text
// extraction found nothing gets a second chance via OCR.
func (e *Extractor) MinTablesPerPage(n int) *Extractor {
	newExt := e.clone()
	newExt.options.minTablesPerPage = n
	return newExt
}

// WithOCR enables the OCR remediation tier. Requires a build with the "ocr"
// build tag; without it, Tables returns ocr.ErrNotEnabled.
//
// Example:
//
//	result, err := fintab.Open("scan.pdf").WithOCR().Tables()
func (e *Extractor) WithOCR() *Extractor {
	newExt := e.clone()
	newExt.options.ocrEnabled = true
	return newExt
}

// OCRLanguage sets the recognition language(s), "+"-separated (for example
// "eng+hin"). Implies nothing unless WithOCR is also set.
func (e *Extractor) OCRLanguage(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguage = lang
	return newExt
}

// DPI sets the rasterization resolution for the OCR tier.
func (e *Extractor) DPI(dpi float64) *Extractor {
	newExt := e.clone()
	newExt.options.dpi = dpi
	return newExt
}

// WithRuleset replaces the built-in classification rules.
//
// Example:
//
//	rules, err := classify.Load("patterns.toml")
//	result, err := fintab.Open("results.pdf").WithRuleset(rules).Tables()
func (e *Extractor) WithRuleset(rules *classify.Ruleset) *Extractor {
	newExt := e.clone()
	newExt.options.rules = rules
	return newExt
}

// RulesFile loads classification rules from a TOML file. A load failure is
// held until the next terminal operation.
//
// Example:
//
//	result, err := fintab.Open("results.pdf").RulesFile("patterns.toml").Tables()
func (e *Extractor) RulesFile(path string) *Extractor {
	newExt := e.clone()
	rules, err := classify.Load(path)
	if err != nil {
		newExt.err = fmt.Errorf("failed to load rules: %w", err)
		return newExt
	}
	newExt.options.rules = rules
	return newExt
}

// WithRulings supplies ruling-line segments for lattice table detection.
// The built-in reader does not parse vector graphics, so without a ruling
// source every document falls through to stream detection.
func (e *Extractor) WithRulings(src reader.RulingSource) *Extractor {
	newExt := e.clone()
	newExt.options.rulings = src
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Tables runs the hybrid extraction over the configured pages and returns
// the classified tables. This is a terminal operation that closes the
// underlying reader.
//
// Example:
//
//	result, err := fintab.Open("results.pdf").Tables()
//	for _, table := range result.Tables {
//	    fmt.Printf("p%d %s (%.2f)\n", table.Page, table.Name, table.Confidence)
//	}
func (e *Extractor) Tables() (*model.ExtractionResult, error) {
	if e.err != nil {
		return nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()

	pages, err := e.resolvePages()
	if err != nil {
		return nil, err
	}

	pipeline := hybrid.NewPipeline(e.options.rules)
	pipeline.ContextLines = e.options.contextLines

	orch := hybrid.NewOrchestrator(pipeline)
	orch.MinTablesPerPage = e.options.minTablesPerPage

	if e.options.ocrEnabled {
		client, err := ocr.New()
		if err != nil {
			return nil, fmt.Errorf("failed to start OCR: %w", err)
		}
		defer client.Close()

		if e.options.ocrLanguage != "" {
			if err := client.SetLanguage(e.options.ocrLanguage); err != nil {
				return nil, fmt.Errorf("failed to set OCR language: %w", err)
			}
		}

		renderer, err := ocr.OpenRenderer(e.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open rasterizer: %w", err)
		}
		defer renderer.Close()

		tier := hybrid.NewOCRTier(renderer, client, e.options.rules, e.options.documentID)
		tier.DPI = e.options.dpi
		tier.ContextLines = e.options.ocrContextLines
		orch.OCR = tier
	}

	src := hybrid.NewReaderSource(e.reader, e.options.rulings)
	return orch.Run(src, pages), nil
}

// Text extracts plain text from the configured pages. This is a terminal
// operation that closes the underlying reader.
//
// Example:
//
//	result, err := fintab.Open("results.pdf").Pages(1).Text()
//	fmt.Println(result.Text)
func (e *Extractor) Text() (*model.TextResult, error) {
	if e.err != nil {
		return nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()

	pages, err := e.resolvePages()
	if err != nil {
		return nil, err
	}

	result := &model.TextResult{
		PageCount: e.reader.PageCount(),
		Pages:     []model.PageText{},
	}

	parts := make([]string, 0, len(pages))
	for _, n := range pages {
		text, err := e.reader.Text(n)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", n, err)
		}
		result.Pages = append(result.Pages, model.PageText{Page: n, Text: text})
		parts = append(parts, text)
	}
	result.Text = strings.Join(parts, "\n\n")

	return result, nil
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	ext := fintab.Open("results.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureReader(); err != nil {
		return 0, err
	}

	return e.reader.PageCount(), nil
}

// resolvePages validates the selected 1-indexed pages, deduplicates them,
// and sorts them. If no pages were specified, all pages are returned.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.reader.PageCount()

	if len(e.options.pages) == 0 {
		pages := make([]int, pageCount)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	seen := make(map[int]bool)
	var pages []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	sort.Ints(pages)
	return pages, nil
}
