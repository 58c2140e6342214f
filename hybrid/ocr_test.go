package hybrid

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/ocr"
	"github.com/tsawler/fintab/tables"
)

type fakeRasterizer struct {
	img image.Image
	err error
}

func (f *fakeRasterizer) Render(page int, dpi float64) (image.Image, error) {
	return f.img, f.err
}

type fakeRecognizer struct {
	tokens []ocr.Token
	err    error
}

func (f *fakeRecognizer) Tokens(img image.Image) ([]ocr.Token, error) {
	return f.tokens, f.err
}

func makeToken(text string, conf float64, block int, x0, y0, x1, y1 int) ocr.Token {
	return ocr.Token{
		Text:       text,
		Confidence: conf,
		Block:      block,
		BBox:       model.NewBBox(float64(x0), float64(y0), float64(x1), float64(y1)),
	}
}

// denseTokens is a 6-token numeric block laid out as two visual rows at
// 300 DPI pixel coordinates.
func denseTokens() []ocr.Token {
	return []ocr.Token{
		makeToken("Revenue", 91, 1, 100, 1000, 400, 1040),
		makeToken("from", 88, 1, 420, 1000, 560, 1040),
		makeToken("operations", 90, 1, 580, 1000, 900, 1040),
		makeToken("1,234", 85, 1, 100, 1100, 300, 1140),
		makeToken("5,678", 84, 1, 420, 1100, 620, 1140),
		makeToken("9,012", 86, 1, 700, 1100, 900, 1140),
	}
}

func newTestTier(tokens []ocr.Token) *OCRTier {
	return NewOCRTier(
		&fakeRasterizer{img: image.NewGray(image.Rect(0, 0, 10, 10))},
		&fakeRecognizer{tokens: tokens},
		nil,
		"D123",
	)
}

func TestOCRTier_RecoversDenseBlock(t *testing.T) {
	tier := newTestTier(denseTokens())
	src := &fakeSource{count: 3}

	tbls, processed, errs := tier.Run(src, []int{3})
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(processed) != 1 || processed[0] != 3 {
		t.Errorf("Expected page 3 processed, got %v", processed)
	}
	if len(tbls) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tbls))
	}

	tbl := tbls[0]
	if tbl.Method != model.MethodOCR {
		t.Errorf("Expected ocr method, got %s", tbl.Method)
	}
	if tbl.ID != "docD123_ocr_p3_t0" {
		t.Errorf("Unexpected table ID %q", tbl.ID)
	}
	if tbl.Confidence != 0.6 {
		t.Errorf("Expected fixed confidence 0.6, got %f", tbl.Confidence)
	}
	// "operations" contains "ratio", and the RATIOS rule is tried first.
	if tbl.Name != "RATIOS" {
		t.Errorf("Expected RATIOS, got %s", tbl.Name)
	}

	text, ok := tbl.Content.(model.OCRText)
	if !ok {
		t.Fatalf("Expected OCRText content, got %T", tbl.Content)
	}
	want := "Revenue | from | operations | 1,234 | 5,678 | 9,012"
	if string(text) != want {
		t.Errorf("Expected %q, got %q", want, string(text))
	}

	// Pixel coordinates at 300 DPI scale to points by 72/300.
	if tbl.BBox.Left() != 24 || tbl.BBox.Top() != 240 {
		t.Errorf("Expected bbox origin (24, 240) points, got (%v, %v)", tbl.BBox.Left(), tbl.BBox.Top())
	}
	if tbl.BBox.Right() != 216 {
		t.Errorf("Expected bbox right 216 points, got %v", tbl.BBox.Right())
	}
}

func TestOCRTier_TokensJoinedIndividually(t *testing.T) {
	// Each token gets its own " | " segment. The separators keep multi-word
	// keywords ("net distributable cash flow") from matching across tokens,
	// so this block classifies as UNKNOWN rather than NDCF.
	tokens := []ocr.Token{
		makeToken("Net", 90, 1, 100, 1000, 200, 1040),
		makeToken("distributable", 90, 1, 220, 1000, 480, 1040),
		makeToken("cash", 90, 1, 500, 1000, 600, 1040),
		makeToken("flow", 90, 1, 620, 1000, 720, 1040),
		makeToken("total", 90, 1, 100, 1100, 220, 1140),
		makeToken("1,234", 90, 1, 240, 1100, 380, 1140),
	}
	tier := newTestTier(tokens)

	tbls, _, errs := tier.Run(&fakeSource{count: 1}, []int{1})
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(tbls) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tbls))
	}

	want := "Net | distributable | cash | flow | total | 1,234"
	if got := tbls[0].Content.Text(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if tbls[0].Name != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN, got %s", tbls[0].Name)
	}
}

func TestNewOCRTierDefaults(t *testing.T) {
	tier := newTestTier(nil)

	if tier.DPI != 300 {
		t.Errorf("Expected default DPI 300, got %f", tier.DPI)
	}
	if tier.ContextLines != 20 {
		t.Errorf("Expected default OCR context depth 20, got %d", tier.ContextLines)
	}
}

func TestOCRTier_SmallBlockRejected(t *testing.T) {
	tier := newTestTier(denseTokens()[:5])
	src := &fakeSource{count: 1}

	tbls, processed, errs := tier.Run(src, []int{1})
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(tbls) != 0 {
		t.Errorf("Expected 5-token block to be rejected, got %d tables", len(tbls))
	}
	// The page was still recognized, just yielded nothing.
	if len(processed) != 1 {
		t.Errorf("Expected page to count as processed, got %v", processed)
	}
}

func TestOCRTier_NoDigitsRejected(t *testing.T) {
	tokens := []ocr.Token{
		makeToken("This", 90, 1, 100, 1000, 200, 1040),
		makeToken("report", 90, 1, 220, 1000, 350, 1040),
		makeToken("covers", 90, 1, 370, 1000, 500, 1040),
		makeToken("the", 90, 1, 100, 1100, 180, 1140),
		makeToken("latest", 90, 1, 200, 1100, 330, 1140),
		makeToken("quarter", 90, 1, 350, 1100, 500, 1140),
	}
	tier := newTestTier(tokens)

	tbls, _, _ := tier.Run(&fakeSource{count: 1}, []int{1})
	if len(tbls) != 0 {
		t.Errorf("Expected digit-free block to be rejected, got %d tables", len(tbls))
	}
}

func TestOCRTier_LowConfidenceFiltered(t *testing.T) {
	// Two junk tokens at confidence 30 must not rescue a 5-token block.
	tokens := append(denseTokens()[:5],
		makeToken("~~", 30, 1, 920, 1000, 960, 1040),
		makeToken("##", 12, 1, 920, 1100, 960, 1140),
	)
	tier := newTestTier(tokens)

	tbls, _, _ := tier.Run(&fakeSource{count: 1}, []int{1})
	if len(tbls) != 0 {
		t.Errorf("Expected low-confidence tokens to be dropped, got %d tables", len(tbls))
	}
}

func TestOCRTier_SeparateBlocks(t *testing.T) {
	second := make([]ocr.Token, 0, 6)
	for _, tok := range denseTokens() {
		tok.Block = 2
		tok.BBox.Y0 += 1000
		tok.BBox.Y1 += 1000
		second = append(second, tok)
	}
	tier := newTestTier(append(denseTokens(), second...))

	tbls, _, errs := tier.Run(&fakeSource{count: 1}, []int{1})
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(tbls) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(tbls))
	}
	if tbls[0].ID != "docD123_ocr_p1_t0" || tbls[1].ID != "docD123_ocr_p1_t1" {
		t.Errorf("Unexpected IDs %q, %q", tbls[0].ID, tbls[1].ID)
	}
}

func TestOCRTier_ContextFromTextLayer(t *testing.T) {
	tier := newTestTier(denseTokens())
	src := &fakeSource{count: 1, pages: map[int]*tables.PageInput{
		1: {
			Number: 1,
			Width:  600,
			Height: 800,
			Words: []model.Word{
				word("Unaudited", 50, 100, 70),
				word("results", 125, 100, 50),
				word("Notes", 50, 300, 40),
			},
		},
	}}

	tbls, _, errs := tier.Run(src, []int{1})
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(tbls) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tbls))
	}

	// The region spans 240-273.6 points, so the 100-point line sits above
	// and the 300-point line below.
	tbl := tbls[0]
	if len(tbl.ContextAbove) != 1 || tbl.ContextAbove[0] != "Unaudited results" {
		t.Errorf("Unexpected context above: %v", tbl.ContextAbove)
	}
	if len(tbl.ContextBelow) != 1 || tbl.ContextBelow[0] != "Notes" {
		t.Errorf("Unexpected context below: %v", tbl.ContextBelow)
	}
}

func TestOCRTier_RenderErrorRecorded(t *testing.T) {
	tier := newTestTier(nil)
	tier.Rasterizer = &fakeRasterizer{err: errors.New("mupdf unavailable")}

	tbls, processed, errs := tier.Run(&fakeSource{count: 1}, []int{1})
	if len(tbls) != 0 || len(processed) != 0 {
		t.Errorf("Expected nothing extracted, got %d tables, %v processed", len(tbls), processed)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "page 1") {
		t.Errorf("Expected rasterization error naming page 1, got %v", errs)
	}
}

func TestOCRTier_RecognizerErrorRecorded(t *testing.T) {
	tier := newTestTier(nil)
	tier.Recognizer = &fakeRecognizer{err: errors.New("tesseract crashed")}

	tbls, processed, errs := tier.Run(&fakeSource{count: 1}, []int{1})
	if len(tbls) != 0 || len(processed) != 0 {
		t.Errorf("Expected nothing extracted, got %d tables, %v processed", len(tbls), processed)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "OCR failed") {
		t.Errorf("Expected recognition error, got %v", errs)
	}
}
