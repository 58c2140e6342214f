// Command extract-tables runs the hybrid table extraction over a PDF and
// writes the result as JSON to stdout. Progress goes to stderr.
//
// Usage:
//
//	extract-tables [flags] <pdf>
//
// Example:
//
//	extract-tables -pages 2-6 -doc-id Q1FY26 -pretty results.pdf
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phuslu/log"

	"github.com/tsawler/fintab"
)

func main() {
	var (
		contextLines = flag.Int("context", 3, "text lines captured above and below each table")
		ocrContext   = flag.Int("ocr-context", 20, "text lines captured around each OCR-recovered region")
		pagesFlag    = flag.String("pages", "", `pages to extract, e.g. "1,3,5-7" (default all)`)
		docID        = flag.String("doc-id", "", "document identifier embedded in OCR table IDs")
		minPerPage   = flag.Int("min-per-page", 1, "route pages with fewer tables than this through OCR")
		patterns     = flag.String("patterns", "", "TOML file overriding the classification rules")
		useOCR       = flag.Bool("ocr", false, "enable the OCR tier (requires a -tags ocr build)")
		ocrLang      = flag.String("ocr-lang", "", `OCR language(s), e.g. "eng+hin"`)
		dpi          = flag.Float64("dpi", 300, "rasterization resolution for OCR")
		pretty       = flag.Bool("pretty", false, "indent the JSON output")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.ConsoleWriter{ColorOutput: true},
	}
	if *verbose {
		logger.Level = log.DebugLevel
	}

	if flag.NArg() != 1 {
		fail("usage: extract-tables [flags] <pdf>", *pretty)
	}
	filename := flag.Arg(0)

	ext := fintab.Open(filename).
		ContextLines(*contextLines).
		OCRContextLines(*ocrContext).
		DocumentID(*docID).
		MinTablesPerPage(*minPerPage).
		DPI(*dpi)

	if *pagesFlag != "" {
		pages, err := parsePages(*pagesFlag)
		if err != nil {
			fail(fmt.Sprintf("invalid -pages: %v", err), *pretty)
		}
		ext = ext.Pages(pages...)
	}
	if *patterns != "" {
		ext = ext.RulesFile(*patterns)
	}
	if *useOCR {
		ext = ext.WithOCR()
		if *ocrLang != "" {
			ext = ext.OCRLanguage(*ocrLang)
		}
	}

	logger.Debug().Str("file", filename).Str("pages", *pagesFlag).Msg("starting extraction")

	result, err := ext.Tables()
	if err != nil {
		fail(err.Error(), *pretty)
	}

	logger.Info().
		Str("file", filename).
		Int("tables", len(result.Tables)).
		Int("pages", result.PageCount).
		Int("errors", len(result.Errors)).
		Msg("extraction complete")

	emit(result, *pretty)
}

// parsePages parses a page selection like "1,3,5-7" into 1-indexed pages.
func parsePages(s string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if start, end, ok := strings.Cut(part, "-"); ok {
			lo, err := strconv.Atoi(strings.TrimSpace(start))
			if err != nil {
				return nil, fmt.Errorf("bad range start %q", start)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(end))
			if err != nil {
				return nil, fmt.Errorf("bad range end %q", end)
			}
			if hi < lo {
				return nil, fmt.Errorf("range %q is backwards", part)
			}
			for p := lo; p <= hi; p++ {
				pages = append(pages, p)
			}
			continue
		}

		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad page %q", part)
		}
		pages = append(pages, p)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages in %q", s)
	}
	return pages, nil
}

// fail emits a JSON error envelope so downstream consumers never have to
// parse free-form stderr, then exits nonzero.
func fail(msg string, pretty bool) {
	emit(map[string]any{"success": false, "error": msg}, pretty)
	os.Exit(1)
}

func emit(v any, pretty bool) {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
