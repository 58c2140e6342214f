// Package model provides the data types shared by the extraction pipeline.
//
// This package defines the user-facing records produced by table extraction.
// All detection and classification stages ultimately produce these types,
// making them the primary API for consuming extraction output.
//
// # Coordinates
//
// All geometry uses a top-left origin: Y grows downward, so a smaller Top()
// means "higher on the page". This matches the reading-order comparisons the
// pipeline performs ("above the table" means Top < table top). Readers that
// obtain bottom-up PDF coordinates are responsible for flipping them before
// constructing model values.
//
// # Tables
//
// An extracted table is a [Table] record carrying page placement, context
// lines, classification metadata, and a confidence score. The table body is a
// tagged [Content] variant: [Grid] for tables recovered from the text layer
// (lattice or stream detection) and [OCRText] for rasterized-OCR regions,
// which yield a flattened text blob rather than cells. The two variants are
// deliberately not unified into one schema; JSON output emits raw_table_grid
// or ocr_text accordingly.
//
// # Results
//
// [ExtractionResult] is the envelope returned by every extraction entry
// point. It is always well formed: on total failure Success is false and
// Errors explains why, but the value is still usable and marshals to valid
// JSON with empty (never null) collections.
package model
