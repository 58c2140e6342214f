package hybrid

import (
	"fmt"

	"github.com/tsawler/fintab/classify"
	"github.com/tsawler/fintab/lines"
	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/tables"
)

// DefaultContextLines is how many text lines are captured above and below
// each table when the caller does not override it.
const DefaultContextLines = 3

// Pipeline is the text-layer extraction pipeline: lattice detection with a
// document-level stream fallback, followed by context capture and
// classification.
type Pipeline struct {
	// Rules drive classification, unit detection, and period extraction.
	Rules *classify.Ruleset

	// ContextLines is the number of lines captured above and below a table.
	ContextLines int

	// Config is passed to both detectors before the run.
	Config tables.Config

	// Lattice and Stream are the detectors for each pass. NewPipeline fills
	// them with the built-in implementations; tests may substitute fakes.
	Lattice tables.Detector
	Stream  tables.Detector
}

// NewPipeline creates a text-layer pipeline with default detectors and
// configuration. A nil ruleset selects the built-in financial rules.
func NewPipeline(rules *classify.Ruleset) *Pipeline {
	if rules == nil {
		rules = classify.DefaultRuleset()
	}
	return &Pipeline{
		Rules:        rules,
		ContextLines: DefaultContextLines,
		Config:       tables.DefaultConfig(),
		Lattice:      tables.NewRulingDetector(),
		Stream:       tables.NewWhitespaceDetector(),
	}
}

// Run extracts tables from the given 1-indexed pages. The lattice detector
// runs over every page first; only when it emits zero tables in the entire
// document does the stream detector get a pass. Emission is what counts:
// lattice candidates discarded for having fewer than 2 rows do not suppress
// the fallback. Page-level failures are returned as messages and do not
// abort the run.
func (p *Pipeline) Run(src Source, pages []int) ([]*model.Table, []string) {
	var errs []string

	var inputs []*tables.PageInput
	for _, n := range pages {
		in, err := src.Page(n)
		if err != nil {
			errs = append(errs, fmt.Sprintf("failed to read page %d: %v", n, err))
			continue
		}
		inputs = append(inputs, in)
	}

	pageLines := make(map[int][]model.Line, len(inputs))
	for _, in := range inputs {
		pageLines[in.Number] = lines.Reconstruct(in.Words)
	}

	out := p.buildTables(p.detect(p.Lattice, inputs, &errs), model.MethodLattice, pageLines)
	if len(out) == 0 {
		out = p.buildTables(p.detect(p.Stream, inputs, &errs), model.MethodStream, pageLines)
	}

	return out, errs
}

// buildTables turns one detector pass's candidates into classified tables,
// discarding grids with fewer than 2 rows and numbering tables per page.
func (p *Pipeline) buildTables(candidates []tables.Candidate, method model.Method, pageLines map[int][]model.Line) []*model.Table {
	var out []*model.Table
	indexOnPage := make(map[int]int)
	for _, c := range candidates {
		if c.Grid.RowCount() < 2 {
			continue
		}
		idx := indexOnPage[c.Page]
		indexOnPage[c.Page]++
		out = append(out, p.build(c, idx, method, pageLines[c.Page]))
	}
	return out
}

// detect runs one detector over every page input, preserving page order.
func (p *Pipeline) detect(d tables.Detector, inputs []*tables.PageInput, errs *[]string) []tables.Candidate {
	if err := d.Configure(p.Config); err != nil {
		*errs = append(*errs, fmt.Sprintf("%s detector configuration failed: %v", d.Name(), err))
		return nil
	}

	var candidates []tables.Candidate
	for _, in := range inputs {
		found, err := d.Detect(in)
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("%s detection failed on page %d: %v", d.Name(), in.Number, err))
			continue
		}
		candidates = append(candidates, found...)
	}
	return candidates
}

// build turns a detector candidate into a classified table.
func (p *Pipeline) build(c tables.Candidate, idx int, method model.Method, pageLines []model.Line) *model.Table {
	above, below := lines.Context(pageLines, c.BBox.Top(), c.BBox.Bottom(), p.ContextLines)

	return &model.Table{
		Page:         c.Page,
		Index:        idx,
		Method:       method,
		BBox:         c.BBox,
		Name:         p.Rules.Classify(c.Grid, above),
		Unit:         p.Rules.Unit(c.Grid, above),
		Periods:      p.Rules.Periods(c.Grid.HeaderRow()),
		ContextAbove: above,
		ContextBelow: below,
		Confidence:   classify.Fuse(classify.Score(c.Grid), c.Accuracy),
		Content:      c.Grid,
	}
}
