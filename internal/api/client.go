// Package api is the HTTP adapter to the remote journal store. It speaks
// plain JSON over a request/response channel; every failure is surfaced as
// a typed, recoverable error for the controller to report.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// StatusError is a non-success response from the store.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("journal store returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("journal store returned %d: %s", e.Code, http.StatusText(e.Code))
}

// errorBody is the JSON error envelope the store uses.
type errorBody struct {
	Message string `json:"message"`
}

// Client talks to the remote journal store.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a store client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		timeout: defaultTimeout,
	}
}

// do performs one JSON round trip. in may be nil for bodyless requests;
// out may be nil when the response body is discarded.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling journal store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var eb errorBody
		if data, readErr := io.ReadAll(resp.Body); readErr == nil {
			if json.Unmarshal(data, &eb) == nil {
				statusErr.Message = eb.Message
			}
		}
		return statusErr
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
