package tables

import (
	"sort"
	"strings"

	"github.com/tsawler/fintab/model"
)

// RulingDetector implements lattice table detection: it builds table grids
// from the ruling lines drawn on the page. Tables without visible borders
// are invisible to this detector; the stream flavor covers those.
type RulingDetector struct {
	config Config
}

// NewRulingDetector creates a ruling detector with default configuration.
func NewRulingDetector() *RulingDetector {
	return &RulingDetector{
		config: DefaultConfig(),
	}
}

// Name returns the detector's identifier ("lattice").
func (d *RulingDetector) Name() string {
	return "lattice"
}

// Configure sets the detector configuration.
func (d *RulingDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect finds ruled tables on a page. Horizontal and vertical rulings are
// grouped into aligned axis positions; runs of horizontal positions close
// enough together form one table each, with cells filled from the words
// whose centers fall inside them.
func (d *RulingDetector) Detect(page *PageInput) ([]Candidate, error) {
	if len(page.Rulings) == 0 {
		return nil, nil
	}

	horizontals, verticals := d.splitRulings(page.Rulings)

	hGroups := d.groupAligned(horizontals, true)
	vGroups := d.groupAligned(verticals, false)

	if len(hGroups) < d.config.MinRows+1 || len(vGroups) < d.config.MinCols+1 {
		return nil, nil
	}

	var candidates []Candidate
	for _, band := range d.splitBands(hGroups) {
		if c, ok := d.buildCandidate(band, vGroups, page); ok {
			c.Page = page.Number
			candidates = append(candidates, c)
		}
	}

	return candidates, nil
}

// splitRulings filters rulings by minimum length and separates them by axis.
func (d *RulingDetector) splitRulings(rulings []model.Ruling) (horizontals, verticals []model.Ruling) {
	for _, r := range rulings {
		if r.Length() < d.config.MinLineLength {
			continue
		}
		switch {
		case r.IsHorizontal():
			horizontals = append(horizontals, r)
		case r.IsVertical():
			verticals = append(verticals, r)
		}
	}
	return horizontals, verticals
}

// axisGroup is a cluster of rulings aligned at one axis position.
type axisGroup struct {
	// Position on the alignment axis (Y for horizontal rulings, X for vertical)
	pos float64

	// Extent on the perpendicular axis
	minExtent float64
	maxExtent float64
}

// groupAligned clusters rulings whose axis positions fall within the
// alignment tolerance, averaging the position and unioning the extents.
// Groups are returned sorted by position.
func (d *RulingDetector) groupAligned(rulings []model.Ruling, horizontal bool) []axisGroup {
	if len(rulings) == 0 {
		return nil
	}

	type entry struct {
		pos      float64
		min, max float64
	}
	entries := make([]entry, len(rulings))
	for i, r := range rulings {
		if horizontal {
			entries[i] = entry{
				pos: (r.Start.Y + r.End.Y) / 2,
				min: minf(r.Start.X, r.End.X),
				max: maxf(r.Start.X, r.End.X),
			}
		} else {
			entries[i] = entry{
				pos: (r.Start.X + r.End.X) / 2,
				min: minf(r.Start.Y, r.End.Y),
				max: maxf(r.Start.Y, r.End.Y),
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].pos < entries[j].pos })

	var groups []axisGroup
	current := axisGroup{pos: entries[0].pos, minExtent: entries[0].min, maxExtent: entries[0].max}
	members := 1

	for _, e := range entries[1:] {
		if e.pos-current.pos <= d.config.AlignmentTolerance {
			current.pos = (current.pos*float64(members) + e.pos) / float64(members+1)
			current.minExtent = minf(current.minExtent, e.min)
			current.maxExtent = maxf(current.maxExtent, e.max)
			members++
		} else {
			groups = append(groups, current)
			current = axisGroup{pos: e.pos, minExtent: e.min, maxExtent: e.max}
			members = 1
		}
	}
	groups = append(groups, current)

	return groups
}

// splitBands splits the sorted horizontal groups into runs belonging to one
// table each: a vertical gap larger than MaxLineGap starts a new band.
func (d *RulingDetector) splitBands(hGroups []axisGroup) [][]axisGroup {
	var bands [][]axisGroup
	current := []axisGroup{hGroups[0]}

	for _, g := range hGroups[1:] {
		if g.pos-current[len(current)-1].pos > d.config.MaxLineGap {
			bands = append(bands, current)
			current = []axisGroup{g}
		} else {
			current = append(current, g)
		}
	}
	bands = append(bands, current)

	return bands
}

// buildCandidate assembles a grid from one horizontal band and the vertical
// groups spanning it.
func (d *RulingDetector) buildCandidate(band []axisGroup, vGroups []axisGroup, page *PageInput) (Candidate, bool) {
	if len(band) < d.config.MinRows+1 {
		return Candidate{}, false
	}

	top := band[0].pos
	bottom := band[len(band)-1].pos

	// Keep only verticals that actually span this band.
	var xs []float64
	for _, v := range vGroups {
		if v.minExtent <= top+d.config.AlignmentTolerance &&
			v.maxExtent >= bottom-d.config.AlignmentTolerance {
			xs = append(xs, v.pos)
		}
	}
	if len(xs) < d.config.MinCols+1 {
		return Candidate{}, false
	}

	ys := make([]float64, len(band))
	for i, g := range band {
		ys[i] = g.pos
	}

	grid, occupancy := fillGrid(ys, xs, page.Words)
	if occupancy < d.config.MinOccupancy {
		return Candidate{}, false
	}

	return Candidate{
		BBox:     model.NewBBox(xs[0], ys[0], xs[len(xs)-1], ys[len(ys)-1]),
		Grid:     grid,
		Accuracy: (0.5 + 0.5*occupancy) * 100,
	}, true
}

// fillGrid assigns words to the cells whose bounds contain their centers and
// returns the grid plus the fraction of non-empty cells.
func fillGrid(ys, xs []float64, words []model.Word) (model.Grid, float64) {
	rows := len(ys) - 1
	cols := len(xs) - 1

	cells := make([][][]model.Word, rows)
	for i := range cells {
		cells[i] = make([][]model.Word, cols)
	}

	for _, w := range words {
		center := w.BBox.Center()
		row := locate(ys, center.Y)
		col := locate(xs, center.X)
		if row < 0 || col < 0 {
			continue
		}
		cells[row][col] = append(cells[row][col], w)
	}

	grid := make(model.Grid, rows)
	filled := 0
	for i := range cells {
		grid[i] = make([]string, cols)
		for j, cellWords := range cells[i] {
			grid[i][j] = joinCell(cellWords)
			if grid[i][j] != "" {
				filled++
			}
		}
	}

	return grid, float64(filled) / float64(rows*cols)
}

// locate returns the interval index of v within the sorted boundary slice,
// or -1 when v lies outside.
func locate(bounds []float64, v float64) int {
	for i := 0; i < len(bounds)-1; i++ {
		if v >= bounds[i] && v < bounds[i+1] {
			return i
		}
	}
	return -1
}

// joinCell joins a cell's words in reading order.
func joinCell(words []model.Word) string {
	if len(words) == 0 {
		return ""
	}
	sort.SliceStable(words, func(i, j int) bool {
		if words[i].Top() != words[j].Top() {
			return words[i].Top() < words[j].Top()
		}
		return words[i].BBox.Left() < words[j].BBox.Left()
	})
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return strings.Join(texts, " ")
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
