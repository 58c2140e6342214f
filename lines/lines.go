package lines

import (
	"sort"
	"strings"

	"github.com/tsawler/fintab/model"
)

// Tolerance is the maximum distance (in page points) between a word's top
// coordinate and the current line's anchor for the word to join that line.
const Tolerance = 5.0

// Reconstruct groups words into logical lines, ordered top to bottom.
// Each line is anchored at its first word's top coordinate; a word whose top
// differs from the anchor by more than Tolerance starts a new line. An empty
// input yields an empty slice.
func Reconstruct(words []model.Word) []model.Line {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top() != sorted[j].Top() {
			return sorted[i].Top() < sorted[j].Top()
		}
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})

	var result []model.Line
	current := []model.Word{sorted[0]}
	anchor := sorted[0].Top()

	flush := func() {
		// Words within a line keep horizontal order.
		sort.SliceStable(current, func(i, j int) bool {
			return current[i].BBox.Left() < current[j].BBox.Left()
		})
		texts := make([]string, len(current))
		for i, w := range current {
			texts[i] = w.Text
		}
		result = append(result, model.Line{
			Text: strings.Join(texts, " "),
			Top:  anchor,
		})
	}

	for _, w := range sorted[1:] {
		if abs(w.Top()-anchor) > Tolerance {
			flush()
			current = current[:0]
			anchor = w.Top()
		}
		current = append(current, w)
	}
	flush()

	return result
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
