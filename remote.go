package duygu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// A RemoteAnalyzer delegates morphological analysis to an HTTP morphology
// server (a Zemberek-style bridge). Tokenization stays local: the wire
// round-trip buys nothing for whitespace splitting, and it keeps Tokenize
// infallible as the Analyzer contract requires.
type RemoteAnalyzer struct {
	baseURL string
	client  *http.Client
}

// RemoteOpt configures a RemoteAnalyzer.
type RemoteOpt func(*RemoteAnalyzer)

// UsingHTTPClient sets the HTTP client used for analysis calls.
func UsingHTTPClient(c *http.Client) RemoteOpt {
	return func(ra *RemoteAnalyzer) {
		ra.client = c
	}
}

// UsingRequestTimeout bounds each analysis call. Expired calls surface as
// errors from AnalyzeAndDisambiguate, which scoring converts to an Error
// result.
func UsingRequestTimeout(d time.Duration) RemoteOpt {
	return func(ra *RemoteAnalyzer) {
		ra.client.Timeout = d
	}
}

// NewRemoteAnalyzer creates an analyzer talking to the morphology server at
// baseURL. The default request timeout is 10 seconds.
func NewRemoteAnalyzer(baseURL string, opts ...RemoteOpt) *RemoteAnalyzer {
	ra := &RemoteAnalyzer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, applyOpt := range opts {
		applyOpt(ra)
	}
	return ra
}

// Tokenize implements Analyzer.
func (ra *RemoteAnalyzer) Tokenize(text string) []string {
	return splitTokens(normalizeText(text))
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Results []struct {
		Root       string   `json:"root"`
		Normalized string   `json:"normalized"`
		Tags       []string `json:"tags"`
		Analysis   string   `json:"analysis"`
	} `json:"results"`
}

// AnalyzeAndDisambiguate implements Analyzer by calling the server's
// /analyze endpoint and mapping its best analyses onto TokenAnalysis values.
func (ra *RemoteAnalyzer) AnalyzeAndDisambiguate(ctx context.Context, text string) ([]TokenAnalysis, error) {
	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encoding analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ra.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ra.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling morphology server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("morphology server returned %s", resp.Status)
	}

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding analyze response: %w", err)
	}

	analyses := make([]TokenAnalysis, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		analyses = append(analyses, TokenAnalysis{
			Root:       r.Root,
			Normalized: r.Normalized,
			Tags:       r.Tags,
			Raw:        r.Analysis,
		})
	}
	return analyses, nil
}
