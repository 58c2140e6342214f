// Package reader provides PDF document access for the extraction pipeline.
//
// The reader deliberately stays on top of existing PDF machinery rather than
// parsing content streams itself: pdfcpu validates the document and supplies
// page count and dimensions, and ledongthuc/pdf supplies the positioned text
// layer. Text fragments are assembled into word tokens with top-left-origin
// coordinates and NFKC-normalized text, which is what the detection and line
// reconstruction stages consume.
//
// A Reader holds one open file handle. Callers own its lifecycle and must
// Close it on every exit path; all extraction entry points do this via defer.
//
// Ruling-line extraction (used by lattice detection) is not part of this
// package: vector graphics parsing is out of scope, so rulings come from an
// optional [RulingSource] supplied by the caller.
package reader
