// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Get issues a single GET request and returns the response. There is no
// retry: a failed call is reported once and the caller decides what to
// do. service names the upstream in error messages (e.g. "PubMed
// esearch"). Non-200 statuses become errors, with the body drained and
// closed; on success the caller owns the body.
func Get(ctx context.Context, client *http.Client, service, rawURL, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", service, err)
	}

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%s returned HTTP %d", service, resp.StatusCode)
	}
	return resp, nil
}
