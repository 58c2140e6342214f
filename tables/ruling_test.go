package tables

import (
	"testing"

	"github.com/tsawler/fintab/model"
)

// Helper to create horizontal rulings
func makeHRuling(y, x1, x2 float64) model.Ruling {
	return model.Ruling{
		Start: model.Point{X: x1, Y: y},
		End:   model.Point{X: x2, Y: y},
	}
}

// Helper to create vertical rulings
func makeVRuling(x, y1, y2 float64) model.Ruling {
	return model.Ruling{
		Start: model.Point{X: x, Y: y1},
		End:   model.Point{X: x, Y: y2},
	}
}

// Helper to create a word centered in a box
func makeCellWord(text string, x0, y0, x1, y1 float64) model.Word {
	return model.Word{Text: text, BBox: model.NewBBox(x0, y0, x1, y1)}
}

// twoByTwoPage builds a fully ruled 2x2 grid with all four cells populated.
func twoByTwoPage() *PageInput {
	return &PageInput{
		Number: 1,
		Width:  600,
		Height: 800,
		Rulings: []model.Ruling{
			makeHRuling(100, 50, 250),
			makeHRuling(150, 50, 250),
			makeHRuling(200, 50, 250),
			makeVRuling(50, 100, 200),
			makeVRuling(150, 100, 200),
			makeVRuling(250, 100, 200),
		},
		Words: []model.Word{
			makeCellWord("Particulars", 60, 110, 140, 120),
			makeCellWord("Q1", 160, 110, 180, 120),
			makeCellWord("Revenue", 60, 160, 130, 170),
			makeCellWord("100", 160, 160, 190, 170),
		},
	}
}

func TestRulingDetector_SimpleGrid(t *testing.T) {
	d := NewRulingDetector()

	candidates, err := d.Detect(twoByTwoPage())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}

	c := candidates[0]
	if c.Page != 1 {
		t.Errorf("Expected page 1, got %d", c.Page)
	}
	if c.Grid.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", c.Grid.RowCount())
	}
	if len(c.Grid[0]) != 2 {
		t.Fatalf("Expected 2 cols, got %d", len(c.Grid[0]))
	}
	if c.Grid[0][0] != "Particulars" || c.Grid[0][1] != "Q1" {
		t.Errorf("Unexpected header row: %v", c.Grid[0])
	}
	if c.Grid[1][0] != "Revenue" || c.Grid[1][1] != "100" {
		t.Errorf("Unexpected data row: %v", c.Grid[1])
	}
	if c.Accuracy <= 0 || c.Accuracy > 100 {
		t.Errorf("Accuracy out of range: %f", c.Accuracy)
	}
	if c.BBox.Top() != 100 || c.BBox.Bottom() != 200 {
		t.Errorf("Unexpected bbox: %+v", c.BBox)
	}
}

func TestRulingDetector_NoRulings(t *testing.T) {
	d := NewRulingDetector()

	candidates, err := d.Detect(&PageInput{Number: 1, Words: []model.Word{
		makeCellWord("text", 10, 10, 50, 20),
	}})
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("Expected no candidates without rulings, got %d", len(candidates))
	}
}

func TestRulingDetector_ShortRulingsFiltered(t *testing.T) {
	d := NewRulingDetector()

	page := twoByTwoPage()
	// Add noise rulings shorter than MinLineLength.
	page.Rulings = append(page.Rulings,
		makeHRuling(120, 50, 55),
		makeVRuling(90, 100, 105),
	)

	candidates, err := d.Detect(page)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Grid.RowCount() != 2 || len(candidates[0].Grid[0]) != 2 {
		t.Errorf("Short rulings changed the grid: %v", candidates[0].Grid)
	}
}

func TestRulingDetector_AlignedRulingsGrouped(t *testing.T) {
	d := NewRulingDetector()

	page := twoByTwoPage()
	// A second stroke within the alignment tolerance of the top border.
	page.Rulings = append(page.Rulings, makeHRuling(101.5, 50, 250))

	candidates, err := d.Detect(page)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Grid.RowCount() != 2 {
		t.Errorf("Expected aligned rulings to merge, got %d rows", candidates[0].Grid.RowCount())
	}
}

func TestRulingDetector_SeparateBands(t *testing.T) {
	d := NewRulingDetector()

	page := twoByTwoPage()
	// A second ruled grid far below the first.
	page.Rulings = append(page.Rulings,
		makeHRuling(500, 50, 250),
		makeHRuling(550, 50, 250),
		makeHRuling(600, 50, 250),
		makeVRuling(50, 500, 600),
		makeVRuling(150, 500, 600),
		makeVRuling(250, 500, 600),
	)
	page.Words = append(page.Words,
		makeCellWord("Assets", 60, 510, 120, 520),
		makeCellWord("900", 160, 510, 190, 520),
		makeCellWord("Equity", 60, 560, 120, 570),
		makeCellWord("400", 160, 560, 190, 570),
	)

	candidates, err := d.Detect(page)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].BBox.Top() >= candidates[1].BBox.Top() {
		t.Errorf("Expected candidates in top-down order")
	}
}

func TestRulingDetector_SparseGridRejected(t *testing.T) {
	d := NewRulingDetector()

	page := twoByTwoPage()
	// Remove most words so occupancy falls below the threshold.
	page.Words = page.Words[:1]

	candidates, err := d.Detect(page)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("Expected sparse grid to be rejected, got %d candidates", len(candidates))
	}
}
