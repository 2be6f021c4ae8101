package client

import (
	"context"
	"io"
	"net/http"
	"time"
)

type Response struct {
	StatusCode int
	Body       []byte
}

type Interface interface {
	Get(ctx context.Context, path string) (*Response, error)
}

// Client is a thin GET-only client for the NOAA APIs. Calls are bounded by
// a fixed timeout and are not retried; a timeout or non-success status is a
// terminal failure for that call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Options struct {
	BaseURL string
	Timeout time.Duration
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}

	return &Client{
		baseURL: opts.BaseURL,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	// Absolute URLs pass through untouched so offset documents, which NOAA
	// returns as self links, can be fetched with the same client.
	fullURL := path
	if c.baseURL != "" && len(path) > 0 && path[0] == '/' {
		fullURL = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
