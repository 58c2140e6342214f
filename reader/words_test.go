package reader

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

// Helper to create a text fragment on a bottom-up baseline
func makeFragment(s string, x, y, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w, FontSize: 10}
}

func TestAssembleWords_GlyphMerging(t *testing.T) {
	texts := []pdf.Text{
		makeFragment("H", 100, 700, 6),
		makeFragment("i", 106, 700, 3),
	}

	words := assembleWords(texts, 800)

	if len(words) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(words))
	}
	if words[0].Text != "Hi" {
		t.Errorf("Expected %q, got %q", "Hi", words[0].Text)
	}
	if words[0].BBox.Left() != 100 || words[0].BBox.Right() != 109 {
		t.Errorf("Unexpected horizontal extent: %+v", words[0].BBox)
	}
}

func TestAssembleWords_CoordinateFlip(t *testing.T) {
	words := assembleWords([]pdf.Text{makeFragment("x", 100, 700, 6)}, 800)

	if len(words) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(words))
	}
	// Baseline 700 on an 800pt page, 10pt font: top 90, bottom 100.
	if words[0].BBox.Top() != 90 {
		t.Errorf("Expected top 90, got %f", words[0].BBox.Top())
	}
	if words[0].BBox.Bottom() != 100 {
		t.Errorf("Expected bottom 100, got %f", words[0].BBox.Bottom())
	}
}

func TestAssembleWords_GapSplitsWords(t *testing.T) {
	texts := []pdf.Text{
		makeFragment("Hi", 100, 700, 10),
		makeFragment("there", 116, 700, 25),
	}

	words := assembleWords(texts, 800)

	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Text != "Hi" || words[1].Text != "there" {
		t.Errorf("Unexpected words: %v", words)
	}
}

func TestAssembleWords_SpaceFragmentSeparates(t *testing.T) {
	// A literal space fragment splits words even when the geometric gap is
	// tiny.
	texts := []pdf.Text{
		makeFragment("a", 100, 700, 5),
		makeFragment(" ", 105, 700, 2),
		makeFragment("b", 107, 700, 5),
	}

	words := assembleWords(texts, 800)

	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Text != "a" || words[1].Text != "b" {
		t.Errorf("Unexpected words: %v", words)
	}
}

func TestAssembleWords_BaselineOrdering(t *testing.T) {
	// Fragments arrive in content-stream order, not reading order.
	texts := []pdf.Text{
		makeFragment("lower", 100, 600, 25),
		makeFragment("upper", 100, 700, 25),
	}

	words := assembleWords(texts, 800)

	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Text != "upper" || words[1].Text != "lower" {
		t.Errorf("Expected top-down order, got %v", words)
	}
	if words[0].Top() >= words[1].Top() {
		t.Errorf("Expected upper word above lower word")
	}
}

func TestAssembleWords_Normalization(t *testing.T) {
	// The ligature U+FB01 normalizes to "fi" under NFKC.
	words := assembleWords([]pdf.Text{makeFragment("ﬁgures", 100, 700, 35)}, 800)

	if len(words) != 1 {
		t.Fatalf("Expected 1 word, got %d", len(words))
	}
	if words[0].Text != "figures" {
		t.Errorf("Expected normalized %q, got %q", "figures", words[0].Text)
	}
}

func TestAssembleWords_Empty(t *testing.T) {
	if words := assembleWords(nil, 800); words != nil {
		t.Errorf("Expected nil for empty input, got %v", words)
	}
	if words := assembleWords([]pdf.Text{makeFragment(" ", 0, 0, 1)}, 800); words != nil {
		t.Errorf("Expected nil for whitespace-only input, got %v", words)
	}
}
