// Package lines reconstructs logical text lines from positioned word tokens
// and extracts context windows around table regions.
//
// # Line Reconstruction
//
// [Reconstruct] groups a page's words into top-to-bottom lines. Words are
// sorted by (top, left) and accumulated into the current line while their
// top coordinate stays within a fixed tolerance of the line's anchor (the
// first word's top). The line text is the horizontal-order join of its words
// with single spaces.
//
// # Context Windows
//
// [Context] returns the N lines immediately above and below a table's
// vertical extent. Lines above are returned in natural reading order ending
// closest to the table; lines below are in reading order starting closest to
// the table. Both lists may be shorter than N.
package lines
