package hybrid

import (
	"sort"

	"github.com/tsawler/fintab/model"
)

// Orchestrator runs the extraction tiers over a document and merges their
// output into one result.
type Orchestrator struct {
	// Pipeline is the text-layer pipeline; always runs.
	Pipeline *Pipeline

	// OCR is the remediation tier; nil disables it.
	OCR *OCRTier

	// MinTablesPerPage is the per-page table count below which a page is
	// routed to the OCR tier.
	MinTablesPerPage int
}

// NewOrchestrator creates an orchestrator around a text pipeline. A nil
// pipeline selects the default one. OCR starts disabled; set the OCR field
// to enable it.
func NewOrchestrator(p *Pipeline) *Orchestrator {
	if p == nil {
		p = NewPipeline(nil)
	}
	return &Orchestrator{
		Pipeline:         p,
		MinTablesPerPage: 1,
	}
}

// Run extracts tables from the given 1-indexed pages, or from the whole
// document when pages is empty. Tier failures are recorded in the result's
// Errors; the run itself always produces a well-formed result.
func (o *Orchestrator) Run(src Source, pages []int) *model.ExtractionResult {
	if len(pages) == 0 {
		pages = make([]int, src.PageCount())
		for i := range pages {
			pages[i] = i + 1
		}
	}

	result := model.NewExtractionResult()
	result.PageCount = src.PageCount()

	textTables, errs := o.Pipeline.Run(src, pages)
	result.Tables = append(result.Tables, textTables...)
	for _, e := range errs {
		result.AddError(e)
	}

	stats := &model.Stats{
		TextTables: len(textTables),
		OCRPages:   []int{},
	}

	if o.OCR != nil {
		var short []int
		for _, n := range pages {
			if result.TablesOnPage(n) < o.MinTablesPerPage {
				short = append(short, n)
			}
		}

		if len(short) > 0 {
			ocrTables, processed, oerrs := o.OCR.Run(src, short)
			result.Tables = append(result.Tables, ocrTables...)
			for _, e := range oerrs {
				result.AddError(e)
			}
			stats.OCRTables = len(ocrTables)
			if processed != nil {
				stats.OCRPages = processed
			}
		}
	}

	// Text and OCR tables interleave in page order; within a page, each
	// tier's own indices order its tables, text before OCR on ties.
	sort.SliceStable(result.Tables, func(i, j int) bool {
		if result.Tables[i].Page != result.Tables[j].Page {
			return result.Tables[i].Page < result.Tables[j].Page
		}
		return result.Tables[i].Index < result.Tables[j].Index
	})

	result.Stats = stats
	return result
}
