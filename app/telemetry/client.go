package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// sim replies are small json documents, cap reads hard
const maxResponseSize = 1024 * 1024

// Client fetches JSON resources from a simulator's local REST interface.
type Client struct {
	base   string
	client *http.Client
}

// NewClient makes a client for the REST interface on a local port.
func NewClient(port int, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base:   fmt.Sprintf("http://127.0.0.1:%d", port),
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch gets one resource and decodes its JSON payload.
func (c *Client) Fetch(ctx context.Context, path string) (any, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("make request for %s: %w", path, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // error on close is not critical here

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %s", path, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var res any
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return res, nil
}
