// Command extract-text extracts the plain text of a PDF and writes it to
// stdout, as JSON by default or raw text with -plain.
//
// Usage:
//
//	extract-text [flags] <pdf>
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
		pagesFlag = flag.String("pages", "", `pages to extract, e.g. "1,3,5-7" (default all)`)
		plain     = flag.Bool("plain", false, "write raw text instead of JSON")
		pretty    = flag.Bool("pretty", false, "indent the JSON output")
	)
	flag.Parse()

	logger := log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.ConsoleWriter{ColorOutput: true},
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extract-text [flags] <pdf>")
		os.Exit(1)
	}
	filename := flag.Arg(0)

	ext := fintab.Open(filename)
	if *pagesFlag != "" {
		pages, err := parsePages(*pagesFlag)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid -pages")
		}
		ext = ext.Pages(pages...)
	}

	result, err := ext.Text()
	if err != nil {
		logger.Fatal().Err(err).Str("file", filename).Msg("text extraction failed")
	}

	logger.Info().
		Str("file", filename).
		Int("pages", len(result.Pages)).
		Msg("text extracted")

	if *plain {
		fmt.Println(result.Text)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		logger.Fatal().Err(err).Msg("failed to encode result")
	}
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
