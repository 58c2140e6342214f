package tables

import (
	"sort"

	"github.com/tsawler/fintab/model"
)

// WhitespaceDetector implements stream table detection: it infers tabular
// structure from whitespace gaps between aligned text columns, with no help
// from ruling lines. Its tolerances are looser than the lattice detector's
// because text-only column edges are ragged.
type WhitespaceDetector struct {
	config Config
}

// NewWhitespaceDetector creates a whitespace detector with default
// configuration.
func NewWhitespaceDetector() *WhitespaceDetector {
	return &WhitespaceDetector{
		config: DefaultConfig(),
	}
}

// Name returns the detector's identifier ("stream").
func (d *WhitespaceDetector) Name() string {
	return "stream"
}

// Configure sets the detector configuration.
func (d *WhitespaceDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect finds tables on a page from word alignment alone. Words are
// clustered by vertical proximity, and each cluster is analyzed for rows and
// aligned columns; clusters whose cell occupancy is too sparse (running
// prose, titles) are rejected.
func (d *WhitespaceDetector) Detect(page *PageInput) ([]Candidate, error) {
	if len(page.Words) == 0 {
		return nil, nil
	}

	var candidates []Candidate
	for _, cluster := range d.clusterWords(page.Words) {
		if c, ok := d.detectInCluster(cluster); ok {
			c.Page = page.Number
			candidates = append(candidates, c)
		}
	}

	return candidates, nil
}

// clusterWords groups words that are vertically close. A gap larger than
// ClusterGap between a word's top and the previous cluster's bottom starts a
// new cluster.
func (d *WhitespaceDetector) clusterWords(words []model.Word) [][]model.Word {
	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Top() < sorted[j].Top()
	})

	var clusters [][]model.Word
	current := []model.Word{sorted[0]}
	bottom := sorted[0].BBox.Bottom()

	for _, w := range sorted[1:] {
		if w.Top()-bottom > d.config.ClusterGap {
			clusters = append(clusters, current)
			current = []model.Word{w}
		} else {
			current = append(current, w)
		}
		if w.BBox.Bottom() > bottom {
			bottom = w.BBox.Bottom()
		}
	}
	clusters = append(clusters, current)

	return clusters
}

// phrase is a run of words merged into one cell-sized unit.
type phrase struct {
	text string
	x0   float64
	x1   float64
}

// detectInCluster attempts to find a table in one word cluster.
func (d *WhitespaceDetector) detectInCluster(words []model.Word) (Candidate, bool) {
	if len(words) < d.config.MinRows*d.config.MinCols {
		return Candidate{}, false
	}

	rows := d.groupRows(words)
	if len(rows) < d.config.MinRows {
		return Candidate{}, false
	}

	phraseRows := make([][]phrase, len(rows))
	var all []phrase
	for i, row := range rows {
		phraseRows[i] = d.mergePhrases(row)
		all = append(all, phraseRows[i]...)
	}

	colPositions := d.columnPositions(all)
	if len(colPositions) < d.config.MinCols {
		return Candidate{}, false
	}

	grid := make(model.Grid, len(phraseRows))
	filled := 0
	alignment := 0.0
	for i, prow := range phraseRows {
		grid[i] = make([]string, len(colPositions))
		for _, p := range prow {
			col, dist := nearestColumn(colPositions, p.x0)
			if grid[i][col] == "" {
				grid[i][col] = p.text
				filled++
			} else {
				grid[i][col] += " " + p.text
			}
			alignment += 1 - minf(dist, d.config.EdgeTolerance)/d.config.EdgeTolerance
		}
	}

	occupancy := float64(filled) / float64(len(grid)*len(colPositions))
	if occupancy < d.config.MinOccupancy {
		return Candidate{}, false
	}
	alignment /= float64(len(all))

	bbox := words[0].BBox
	for _, w := range words[1:] {
		bbox = bbox.Union(w.BBox)
	}

	return Candidate{
		BBox:     bbox,
		Grid:     grid,
		Accuracy: (0.6*occupancy + 0.4*alignment) * 100,
	}, true
}

// groupRows groups a cluster's words into rows using the stream row
// tolerance, anchored at each row's first word.
func (d *WhitespaceDetector) groupRows(words []model.Word) [][]model.Word {
	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top() != sorted[j].Top() {
			return sorted[i].Top() < sorted[j].Top()
		}
		return sorted[i].BBox.Left() < sorted[j].BBox.Left()
	})

	var rows [][]model.Word
	current := []model.Word{sorted[0]}
	anchor := sorted[0].Top()

	for _, w := range sorted[1:] {
		if w.Top()-anchor > d.config.RowTolerance {
			rows = append(rows, current)
			current = nil
			anchor = w.Top()
		}
		current = append(current, w)
	}
	rows = append(rows, current)

	return rows
}

// mergePhrases merges a row's words into phrases: consecutive words whose
// horizontal gap is at most MaxCellGap belong to the same cell.
func (d *WhitespaceDetector) mergePhrases(row []model.Word) []phrase {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].BBox.Left() < row[j].BBox.Left()
	})

	var phrases []phrase
	current := phrase{text: row[0].Text, x0: row[0].BBox.Left(), x1: row[0].BBox.Right()}

	for _, w := range row[1:] {
		if w.BBox.Left()-current.x1 <= d.config.MaxCellGap {
			current.text += " " + w.Text
			current.x1 = maxf(current.x1, w.BBox.Right())
		} else {
			phrases = append(phrases, current)
			current = phrase{text: w.Text, x0: w.BBox.Left(), x1: w.BBox.Right()}
		}
	}
	phrases = append(phrases, current)

	return phrases
}

// columnPositions clusters phrase left edges into column positions using the
// stream edge tolerance, averaging edges that fall in one cluster.
func (d *WhitespaceDetector) columnPositions(phrases []phrase) []float64 {
	if len(phrases) == 0 {
		return nil
	}

	edges := make([]float64, len(phrases))
	for i, p := range phrases {
		edges[i] = p.x0
	}
	sort.Float64s(edges)

	positions := []float64{edges[0]}
	members := 1

	for _, e := range edges[1:] {
		last := positions[len(positions)-1]
		if e-last <= d.config.EdgeTolerance {
			positions[len(positions)-1] = (last*float64(members) + e) / float64(members+1)
			members++
		} else {
			positions = append(positions, e)
			members = 1
		}
	}

	return positions
}

// nearestColumn returns the index of the closest column position and the
// distance to it.
func nearestColumn(positions []float64, x float64) (int, float64) {
	best := 0
	bestDist := absf(positions[0] - x)
	for i, pos := range positions[1:] {
		if d := absf(pos - x); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best, bestDist
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
