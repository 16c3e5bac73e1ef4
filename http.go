package tagscan

import (
	"context"
	"fmt"
	"net/http"
)

// HTTPExtractRequest configures HTTPExtract.
type HTTPExtractRequest struct {
	URL    string
	Client *http.Client
}

// HTTPExtract fetches text over HTTP(S) and extracts its tokens.
func HTTPExtract(ctx context.Context, req HTTPExtractRequest) (Result, error) {
	if req.URL == "" {
		return Result{}, fmt.Errorf("extract http: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("extract http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return Result{}, fmt.Errorf("extract http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("extract http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("extract http: status %s", resp.Status)
	}
	return Extract(resp.Body)
}
