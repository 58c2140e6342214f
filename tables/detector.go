package tables

import (
	"github.com/tsawler/fintab/model"
)

// PageInput is everything a detector sees for one page.
type PageInput struct {
	// Number is the 1-indexed page number.
	Number int

	// Width and Height are the page dimensions in points.
	Width, Height float64

	// Words are the page's positioned word tokens.
	Words []model.Word

	// Rulings are the page's ruling-line segments, when a ruling source is
	// available. Empty for text-layer-only readers.
	Rulings []model.Ruling
}

// Candidate is a detected table before context extraction and
// classification.
type Candidate struct {
	// Page is the 1-indexed page number.
	Page int

	// BBox is the table's bounding box in page points.
	BBox model.BBox

	// Grid is the 2-D cell text, outer slice ordered top to bottom.
	Grid model.Grid

	// Accuracy is the detector's own quality estimate on the 0-100 scale,
	// negative when the detector reports none.
	Accuracy float64
}

// Detector is the interface for table detection algorithms.
type Detector interface {
	// Detect finds table candidates on a page.
	Detect(page *PageInput) ([]Candidate, error)

	// Name returns the detector name.
	Name() string

	// Configure sets detector parameters.
	Configure(config Config) error
}

// Config holds detector configuration.
type Config struct {
	// Minimum rows for a valid table
	MinRows int

	// Minimum columns for a valid table
	MinCols int

	// Tolerance for grouping aligned ruling lines (points)
	AlignmentTolerance float64

	// Minimum ruling length to consider (points)
	MinLineLength float64

	// Maximum gap between grid lines within one table (points)
	MaxLineGap float64

	// Tolerance for clustering text column edges (points, stream)
	EdgeTolerance float64

	// Tolerance for grouping words into rows (points, stream)
	RowTolerance float64

	// Maximum horizontal gap between words in the same cell (points, stream)
	MaxCellGap float64

	// Vertical gap that splits word clusters into separate regions (points)
	ClusterGap float64

	// Minimum fraction of non-empty cells for a candidate to survive
	MinOccupancy float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MinRows:            2,
		MinCols:            2,
		AlignmentTolerance: 3.0,
		MinLineLength:      10.0,
		MaxLineGap:         50.0,
		EdgeTolerance:      50.0,
		RowTolerance:       10.0,
		MaxCellGap:         5.0,
		ClusterGap:         50.0,
		MinOccupancy:       0.5,
	}
}

// Registry holds registered detectors.
type Registry struct {
	detectors map[string]Detector
}

// NewRegistry creates a new detector registry.
func NewRegistry() *Registry {
	return &Registry{
		detectors: make(map[string]Detector),
	}
}

// Register registers a detector.
func (r *Registry) Register(detector Detector) {
	r.detectors[detector.Name()] = detector
}

// Get retrieves a detector by name.
func (r *Registry) Get(name string) Detector {
	return r.detectors[name]
}

// List returns all registered detector names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// Register registers a detector globally.
func Register(detector Detector) {
	globalRegistry.Register(detector)
}

// Get retrieves a globally registered detector by name.
func Get(name string) Detector {
	return globalRegistry.Get(name)
}

// List returns all globally registered detector names.
func List() []string {
	return globalRegistry.List()
}

func init() {
	// Register default detectors
	Register(NewRulingDetector())
	Register(NewWhitespaceDetector())
}
