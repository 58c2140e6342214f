// Package fintab provides a fluent API for extracting and classifying
// tables from financial-disclosure PDFs.
//
// Basic usage:
//
//	result, err := fintab.Open("results.pdf").Tables()
//	if err != nil {
//	    // handle error
//	}
//	for _, table := range result.Tables {
//	    fmt.Printf("page %d: %s\n", table.Page, table.Name)
//	}
//
// With options:
//
//	result, err := fintab.Open("results.pdf").
//	    Pages(2, 3).
//	    ContextLines(5).
//	    DocumentID("Q1FY26").
//	    Tables()
//
// For advanced use cases, the lower-level reader, tables, and hybrid
// packages are also available.
package fintab

import (
	"github.com/tsawler/fintab/reader"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Tables().
//
// Example:
//
//	result, err := fintab.Open("results.pdf").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("results.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	result, err := fintab.FromReader(r).Tables()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		filename:     r.Path(),
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := fintab.Must(fintab.Open("results.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
