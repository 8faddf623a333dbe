// Package api talks to the food-delivery backend. Every call goes through
// Client.Do, which attaches the stored bearer token and turns non-2xx
// responses into *Error values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURL is the hosted backend origin
const DefaultBaseURL = "https://dellytmf.onrender.com"

// HTTPClient is satisfied by *http.Client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource yields the current bearer token, or "" when signed out.
// It is read on every call so login and logout take effect immediately.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Client struct {
	baseURL string
	http    HTTPClient
	tokens  TokenSource
}

func NewClient(baseURL string, httpClient HTTPClient, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Response is a successful backend response. JSON bodies have already been
// decoded into the caller's target; Body always holds the raw bytes.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the backend declared a JSON body
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}

// Do sends body as JSON to path and, when the response is JSON and out is
// non-nil, decodes the response into out.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if resp.IsJSON() && out != nil && len(bytes.TrimSpace(resp.Body)) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return nil, &Error{Status: resp.StatusCode, Message: "Invalid response from server"}
		}
	}
	return resp, nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	tok, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return nil
}

// send performs req and reads the whole body. Transport failures come back
// as *Error with Status 0.
func (c *Client) send(req *http.Request) (*Response, error) {
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ %s %s: %v", req.Method, req.URL.Path, err)
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: err.Error()}
	}
	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}
