package todoapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 32 << 20

// Response is the raw outcome of one round trip.
type Response struct {
	StatusCode int
	Body       []byte
}

// Executor sends single HTTP requests against a base endpoint.
type Executor struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewExecutor builds an Executor for baseEndpoint. A nil httpClient uses
// http.DefaultClient.
func NewExecutor(baseEndpoint string, httpClient *http.Client, userAgent string) (*Executor, error) {
	base, err := parseBaseURL(baseEndpoint)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Executor{baseURL: base, http: httpClient, userAgent: userAgent}, nil
}

// Execute performs exactly one request. A non-nil error is always a
// *TransportError; any received status, including 4xx/5xx, is returned in
// Response.
func (e *Executor) Execute(ctx context.Context, method, path string, headers http.Header, body []byte) (Response, error) {
	reqURL := e.resolve(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return Response{}, &TransportError{Op: "create request", Err: err}
	}
	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	resp, err := e.http.Do(req)
	if err != nil {
		return Response{}, &TransportError{Op: "execute request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, &TransportError{Op: "read response", Err: err}
	}
	return Response{StatusCode: resp.StatusCode, Body: raw}, nil
}

// resolve appends path to the base URL's path. The id segment is not
// escaped here; url.URL.String applies the default path encoding.
func (e *Executor) resolve(path string) *url.URL {
	u := *e.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""
	return &u
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, errors.New("base endpoint is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base endpoint %q: missing host", endpoint)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
