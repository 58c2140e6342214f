// Package tables provides the table-detection primitives used by the
// extraction tiers.
//
// Two detectors are provided, matching the two text-layer extraction
// flavors:
//
//   - [RulingDetector] ("lattice") - builds table grids from ruling-line
//     graphics. It requires a ruling source; pages without ruling data yield
//     no lattice tables.
//   - [WhitespaceDetector] ("stream") - infers table grids from whitespace
//     gaps between aligned text columns, with looser tolerances.
//
// Both implement the [Detector] interface and produce [Candidate] values: a
// bounding box, a 2-D text grid, and an accuracy metric on the 0-100 scale
// that confidence scoring later fuses with its own heuristics.
//
// Detectors are registered globally and can be retrieved by name:
//
//	detector := tables.Get("stream")
//	candidates, err := detector.Detect(page)
//
// # Configuration
//
// Detector behavior is controlled by [Config]. The stream tolerances
// (EdgeTolerance 50, RowTolerance 10) are deliberately looser than the
// lattice ones (AlignmentTolerance 3), mirroring how whitespace detection
// must absorb ragged column edges that ruled tables do not have.
package tables
