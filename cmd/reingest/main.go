// Command reingest submits one or more PDFs to the document-ingestion
// service and reports what the service extracted from each.
//
// Usage:
//
//	reingest -url http://localhost:8080 [flags] <pdf>...
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"

	"github.com/tsawler/fintab/ingest"
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "ingestion service base URL")
		category = flag.String("category", "financials", "metadata category")
		tagsFlag = flag.String("tags", "", "comma-separated metadata tags")
		date     = flag.String("date", "", "document date, e.g. 2026-07-15")
	)
	flag.Parse()

	logger := log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.ConsoleWriter{ColorOutput: true},
	}

	if flag.NArg() == 0 {
		logger.Fatal().Msg("usage: reingest -url <service> [flags] <pdf>...")
	}

	var tags []string
	for _, t := range strings.Split(*tagsFlag, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := ingest.NewClient(*baseURL)
	failed := 0

	for _, path := range flag.Args() {
		abs, err := filepath.Abs(path)
		if err != nil {
			logger.Error().Err(err).Str("file", path).Msg("bad path")
			failed++
			continue
		}

		name := filepath.Base(abs)
		resp, err := client.Ingest(ctx, ingest.Request{
			FilePath: abs,
			Metadata: ingest.Metadata{
				FileName:    name,
				DisplayName: strings.TrimSuffix(name, filepath.Ext(name)),
				Date:        *date,
				Tags:        tags,
				Category:    *category,
			},
		})
		if err != nil {
			logger.Error().Err(err).Str("file", name).Msg("ingestion failed")
			failed++
			continue
		}

		logger.Info().
			Str("file", name).
			Int("chunks", resp.ChunksExtracted).
			Int("tables", resp.TablesExtracted).
			Msg("ingested")
	}

	if failed > 0 {
		os.Exit(1)
	}
}
