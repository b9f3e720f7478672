// Package tio is a client for TIO-style remote code execution services.
//
// The service exposes two endpoints: a JSON list of supported language
// identifiers, and a run endpoint that accepts a DEFLATE-compressed request
// describing the language, code, and stdin, and answers with a gzip-compressed
// body containing the program output and a debug report.
package tio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Default service endpoints.
const (
	DefaultBaseURL = "https://tio.run"

	languagesPath = "/languages.json"
	runPath       = "/cgi-bin/run/api/"
)

// Request describes one code submission.
type Request struct {
	Code     string
	Language string // canonical language identifier
	Stdin    string
}

// Result holds the outcome of a submission.
type Result struct {
	Output     string // the program's stdout (and stderr)
	Debug      string // the service's debug report (timings, exit code line)
	ExitStatus int
}

// Client talks to one TIO-style backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client for the service at baseURL.
// An empty baseURL selects the public tio.run instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  "quickrun",
	}
}

// Languages fetches the identifiers of all languages the service supports,
// sorted lexically.
func (c *Client) Languages(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+languagesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build languages request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch language list: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("language list request returned %s", resp.Status)
	}

	// The body is a JSON object keyed by language identifier; the metadata
	// values are not needed here.
	var listing map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode language list: %w", err)
	}

	languages := make([]string, 0, len(listing))
	for name := range listing {
		languages = append(languages, name)
	}
	sort.Strings(languages)
	return languages, nil
}

// Run submits code for execution and waits for the result. There is no
// client-side timeout; cancellation is the caller's context's job.
func (c *Client) Run(ctx context.Context, r Request) (*Result, error) {
	body, err := encodeRunRequest(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+runPath, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build run request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit code: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("run request returned %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read run response: %w", err)
	}

	result, err := decodeRunResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode run response: %w", err)
	}
	return result, nil
}
