// Package ocr provides page rasterization and OCR for pages whose tables are
// invisible to text-layer detection (scanned documents, tables drawn as
// images).
//
// Rasterization uses MuPDF via go-fitz and recognition uses Tesseract via
// gosseract; both are cgo dependencies, so the whole capability sits behind
// the "ocr" build tag with stub implementations otherwise:
//
//	go build -tags ocr
//
// This requires MuPDF and Tesseract to be installed. On macOS:
//
//	brew install mupdf tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install libmupdf-dev tesseract-ocr libtesseract-dev
//
// The [Enabled] constant reports at runtime whether OCR support was compiled
// in, so callers can skip the OCR tier instead of collecting errors.
//
// Recognition output is word-level: each [Token] carries the recognized
// text, the engine's confidence, the layout block it belongs to, and its
// pixel bounding box. The hybrid OCR tier groups tokens by block to find
// table-like regions.
package ocr
