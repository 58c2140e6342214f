package reader

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/fintab/model"
)

// baselineTolerance groups text fragments onto one baseline (points).
const baselineTolerance = 2.0

// assembleWords merges raw text fragments into word tokens. Fragments arrive
// in content-stream order, frequently glyph by glyph, with bottom-up baseline
// coordinates; the result is reading-ordered words with top-left-origin
// bounding boxes.
func assembleWords(texts []pdf.Text, pageHeight float64) []model.Word {
	fragments := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		fragments = append(fragments, t)
	}
	if len(fragments) == 0 {
		return nil
	}

	// Row-major order: baseline top to bottom, then left to right.
	sort.SliceStable(fragments, func(i, j int) bool {
		if absf(fragments[i].Y-fragments[j].Y) > baselineTolerance {
			return fragments[i].Y > fragments[j].Y
		}
		return fragments[i].X < fragments[j].X
	})

	var words []model.Word
	var current []pdf.Text

	flush := func() {
		if len(current) == 0 {
			return
		}
		if w, ok := buildWord(current, pageHeight); ok {
			words = append(words, w)
		}
		current = current[:0]
	}

	for _, f := range fragments {
		// Explicit space fragments separate words but join no word
		// themselves.
		if strings.TrimSpace(f.S) == "" {
			flush()
			continue
		}
		if len(current) > 0 {
			prev := current[len(current)-1]
			sameBaseline := absf(f.Y-prev.Y) <= baselineTolerance
			gap := f.X - (prev.X + prev.W)
			if !sameBaseline || gap > wordGap(prev) {
				flush()
			}
		}
		current = append(current, f)
	}
	flush()

	return words
}

// wordGap returns the maximum horizontal gap that still joins two fragments
// into one word, scaled by font size so large headings merge correctly.
func wordGap(f pdf.Text) float64 {
	gap := 0.3 * f.FontSize
	if gap < 1.0 {
		gap = 1.0
	}
	return gap
}

// buildWord collapses a run of fragments into one word token. Whitespace-only
// runs produce no word.
func buildWord(fragments []pdf.Text, pageHeight float64) (model.Word, bool) {
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(f.S)
	}
	text := strings.TrimSpace(norm.NFKC.String(sb.String()))
	if text == "" {
		return model.Word{}, false
	}

	first := fragments[0]
	x0 := first.X
	x1 := first.X + first.W
	baseline := first.Y
	size := first.FontSize

	for _, f := range fragments[1:] {
		if f.X < x0 {
			x0 = f.X
		}
		if f.X+f.W > x1 {
			x1 = f.X + f.W
		}
		if f.FontSize > size {
			size = f.FontSize
		}
	}

	// The glyph box sits on the baseline and extends one font size up.
	// Flip to top-left origin.
	top := pageHeight - baseline - size
	bottom := pageHeight - baseline

	return model.Word{
		Text: text,
		BBox: model.NewBBox(x0, top, x1, bottom),
	}, true
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
