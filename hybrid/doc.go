// Package hybrid coordinates the extraction tiers.
//
// The text-layer pipeline runs first: the lattice detector over every
// selected page, falling back to the stream detector for the whole document
// when lattice finds nothing at all. The fallback is a document-level
// decision because both detectors read the same text layer; if ruling lines
// exist anywhere, pages without tables are genuinely table-free, not
// misread.
//
// The OCR tier is per-page remediation: after the text pipeline, any page
// holding fewer tables than the configured minimum is rasterized and run
// through the recognizer, and dense text blocks are recovered as
// unstructured table regions.
//
// Results from all tiers are merged and sorted by page, then by the table's
// index on its page.
package hybrid
