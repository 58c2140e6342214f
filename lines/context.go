package lines

import (
	"sort"

	"github.com/tsawler/fintab/model"
)

// Context returns up to count lines strictly above the given top coordinate
// and up to count lines strictly below the given bottom coordinate.
//
// The above list is selected nearest-first, then reversed so it reads top to
// bottom and ends with the line closest to the table. The below list is
// already in reading order, starting with the line closest to the table.
func Context(all []model.Line, top, bottom float64, count int) (above, below []string) {
	if count <= 0 {
		return nil, nil
	}

	var aboveLines, belowLines []model.Line
	for _, l := range all {
		switch {
		case l.Top < top:
			aboveLines = append(aboveLines, l)
		case l.Top > bottom:
			belowLines = append(belowLines, l)
		}
	}

	// Nearest lines first, so the cap keeps the ones adjacent to the table.
	sort.SliceStable(aboveLines, func(i, j int) bool {
		return aboveLines[i].Top > aboveLines[j].Top
	})
	if len(aboveLines) > count {
		aboveLines = aboveLines[:count]
	}
	for i := len(aboveLines) - 1; i >= 0; i-- {
		above = append(above, aboveLines[i].Text)
	}

	sort.SliceStable(belowLines, func(i, j int) bool {
		return belowLines[i].Top < belowLines[j].Top
	})
	if len(belowLines) > count {
		belowLines = belowLines[:count]
	}
	for _, l := range belowLines {
		below = append(below, l.Text)
	}

	return above, below
}
