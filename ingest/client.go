// Package ingest provides a client for the document-ingestion service that
// consumes extraction output downstream. The service re-runs chunking and
// table extraction server-side; the client reports back how much it
// extracted.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Metadata describes the document being ingested.
type Metadata struct {
	FileName    string   `json:"fileName"`
	DisplayName string   `json:"displayName"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

// Request is the ingestion request body.
type Request struct {
	FilePath string   `json:"filePath"`
	Metadata Metadata `json:"metadata"`
}

// Response is the ingestion service's summary of what it extracted.
type Response struct {
	ChunksExtracted int `json:"chunksExtracted"`
	TablesExtracted int `json:"tablesExtracted"`
}

// Client talks to one ingestion service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL. Ingestion re-parses
// whole documents server-side, so the default timeout is generous.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Minute},
	}
}

// Ingest submits a document for ingestion and returns the service's
// extraction summary.
func (c *Client) Ingest(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ingest/file", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ingestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ingestion failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &out, nil
}
