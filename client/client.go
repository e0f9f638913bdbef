// Package client talks to the cafe REST API. Each call is a single round trip
// with no retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"cafeadmin/model"
)

// Gateway is every API operation the console uses.
type Gateway interface {
	ListCafes(ctx context.Context) ([]model.Cafe, error)
	CreateCafe(ctx context.Context, cafe model.Cafe) (model.Cafe, error)
	UpdateCafe(ctx context.Context, cafe model.Cafe) (model.Cafe, error)
	DeleteCafe(ctx context.Context, cafeID string) error

	ListEmployeesByCafe(ctx context.Context, cafeID string) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, emp model.EmployeePayload) (model.Employee, error)
	UpdateEmployee(ctx context.Context, emp model.EmployeePayload) (model.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL. A nil httpClient means
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// do sends one request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	url := c.baseURL + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &TransportError{Op: op, Method: method, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("client: %s %s failed: %v", method, url, err)
		return &TransportError{Op: op, Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Method: method, URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("client: %s %s returned %d", method, url, resp.StatusCode)
		return &TransportError{
			Op:         op,
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(raw), 512),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		if out != nil {
			return &PayloadError{Op: op, Reason: "empty response body"}
		}
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("client: %s %s returned undecodable body: %v", method, url, err)
		return &PayloadError{Op: op, Reason: "decode response", Err: err}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
