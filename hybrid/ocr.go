package hybrid

import (
	"fmt"
	"image"
	"strings"

	"github.com/tsawler/fintab/classify"
	"github.com/tsawler/fintab/lines"
	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/ocr"
)

const (
	// DefaultDPI is the rasterization resolution for OCR.
	DefaultDPI = 300

	// DefaultOCRContextLines is the context capture depth for OCR regions.
	// Much deeper than the text tier's default: OCR text is noisy, so
	// classification leans harder on the surrounding text layer.
	DefaultOCRContextLines = 20

	// minTokenConfidence drops recognizer noise; tokens at or below this
	// confidence are ignored.
	minTokenConfidence = 30

	// minBlockTokens is how many surviving tokens a layout block needs to be
	// considered a table region.
	minBlockTokens = 6

	// ocrConfidence is the fixed confidence assigned to OCR table regions.
	// No grid shape exists to score, so every region gets the same estimate.
	ocrConfidence = 0.6
)

// Rasterizer renders a 1-indexed page to an image.
type Rasterizer interface {
	Render(page int, dpi float64) (image.Image, error)
}

// Recognizer runs OCR on a page image and returns word-level tokens.
type Recognizer interface {
	Tokens(img image.Image) ([]ocr.Token, error)
}

// OCRTier recovers table regions from rasterized pages. It targets pages
// the text pipeline left short: the recognizer's layout blocks are filtered
// to dense, numeric text runs, which on disclosure pages are almost always
// tables.
type OCRTier struct {
	Rasterizer Rasterizer
	Recognizer Recognizer

	// Rules classify the recovered regions; OCR text gets the broader OCR
	// catch-all rules.
	Rules *classify.Ruleset

	// DocumentID is embedded in every OCR table ID.
	DocumentID string

	// DPI is the rasterization resolution.
	DPI float64

	// ContextLines is the number of text-layer lines captured around each
	// region, when the page has a text layer at all.
	ContextLines int
}

// NewOCRTier creates an OCR tier with default resolution and context depth.
// A nil ruleset selects the built-in financial rules.
func NewOCRTier(ras Rasterizer, rec Recognizer, rules *classify.Ruleset, documentID string) *OCRTier {
	if rules == nil {
		rules = classify.DefaultRuleset()
	}
	return &OCRTier{
		Rasterizer:   ras,
		Recognizer:   rec,
		Rules:        rules,
		DocumentID:   documentID,
		DPI:          DefaultDPI,
		ContextLines: DefaultOCRContextLines,
	}
}

// Run recovers table regions from the given 1-indexed pages. It returns the
// recovered tables, the pages that were successfully recognized, and
// page-level error messages.
func (t *OCRTier) Run(src Source, pages []int) ([]*model.Table, []int, []string) {
	var out []*model.Table
	var processed []int
	var errs []string

	for _, n := range pages {
		img, err := t.Rasterizer.Render(n, t.DPI)
		if err != nil {
			errs = append(errs, fmt.Sprintf("OCR rasterization failed on page %d: %v", n, err))
			continue
		}

		tokens, err := t.Recognizer.Tokens(img)
		if err != nil {
			errs = append(errs, fmt.Sprintf("OCR failed on page %d: %v", n, err))
			continue
		}
		processed = append(processed, n)

		// Context comes from the page's own text layer; scanned pages have
		// none and yield tables without context.
		var pageLines []model.Line
		if in, err := src.Page(n); err == nil {
			pageLines = lines.Reconstruct(in.Words)
		}

		out = append(out, t.tablesFromTokens(tokens, n, pageLines)...)
	}

	return out, processed, errs
}

// tablesFromTokens filters and groups recognizer tokens into table regions
// for one page.
func (t *OCRTier) tablesFromTokens(tokens []ocr.Token, page int, pageLines []model.Line) []*model.Table {
	// Token coordinates are pixels at the rasterization resolution; scale
	// everything to page points so context and bounding boxes line up with
	// the text-layer tiers.
	scale := 72.0 / t.DPI

	var order []int
	blocks := make(map[int][]ocr.Token)
	for _, tok := range tokens {
		if tok.Confidence <= minTokenConfidence {
			continue
		}
		if _, seen := blocks[tok.Block]; !seen {
			order = append(order, tok.Block)
		}
		blocks[tok.Block] = append(blocks[tok.Block], tok)
	}

	var out []*model.Table
	idx := 0
	for _, block := range order {
		toks := blocks[block]
		if !isTableRegion(toks) {
			continue
		}

		texts := make([]string, len(toks))
		bbox := toks[0].BBox
		for i, tok := range toks {
			texts[i] = tok.Text
			bbox = bbox.Union(tok.BBox)
		}
		bbox = bbox.Scale(scale)

		// Tokens are joined individually, not grouped into lines first: the
		// separators keep multi-word keywords from matching across token
		// boundaries during classification.
		content := model.OCRText(strings.Join(texts, " | "))
		above, below := lines.Context(pageLines, bbox.Top(), bbox.Bottom(), t.ContextLines)

		out = append(out, &model.Table{
			Page:         page,
			Index:        idx,
			ID:           fmt.Sprintf("doc%s_ocr_p%d_t%d", t.DocumentID, page, idx),
			Method:       model.MethodOCR,
			BBox:         bbox,
			Name:         t.Rules.ClassifyOCR(content, above),
			Unit:         t.Rules.Unit(content, above),
			ContextAbove: above,
			ContextBelow: below,
			Confidence:   ocrConfidence,
			Content:      content,
		})
		idx++
	}

	return out
}

// isTableRegion reports whether a block's tokens look like a table: enough
// of them, and at least one carrying a digit.
func isTableRegion(toks []ocr.Token) bool {
	if len(toks) < minBlockTokens {
		return false
	}
	for _, tok := range toks {
		if strings.ContainsAny(tok.Text, "0123456789") {
			return true
		}
	}
	return false
}
