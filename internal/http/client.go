// Package http implements the HTTP transport for the Gitea API client.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/steeped-dev/gitea-client/internal/constants"
	"github.com/steeped-dev/gitea-client/pkg/gitea"
)

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport. It owns base URL joining, the fixed
// Authorization header, JSON encoding, and error mapping; resource clients
// above it deal only in paths and typed bodies.
type Client struct {
	baseURL      string
	authHeader   string
	httpClient   *retryablehttp.Client
	userAgent    string
	logger       gitea.Logger
	debug        bool
	interceptors *gitea.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger gitea.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries on transient failures.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *gitea.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP transport. authHeader is the complete
// Authorization header value ("token ..." or "Basic ..."), or empty for
// unauthenticated access. Requests are not retried unless WithRetryConfig
// is applied.
func NewClient(baseURL, authHeader string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authHeader: authHeader,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	// Debug logging rides the interceptor chain so it observes exactly
	// what user interceptors observe.
	if client.debug && client.logger != nil {
		if client.interceptors == nil {
			client.interceptors = gitea.NewInterceptorChain()
		}

		client.interceptors.AddRequestInterceptor(gitea.LoggingInterceptor(client.logger))
		client.interceptors.AddResponseInterceptor(gitea.LoggingResponseInterceptor(client.logger))
	}

	return client
}

// Do executes a request. On a non-2xx status both the response and a
// *gitea.Error are returned, so callers can still inspect headers.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + constants.APIPrefix + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	var bodyBytes []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &gitea.Error{
				Kind:       gitea.ErrorKindSerialization,
				StatusCode: constants.HTTPStatusBadRequest,
				Message:    fmt.Sprintf("encoding request body: %v", err),
			}
		}

		bodyBytes = data
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, &gitea.Error{
			Kind:       gitea.ErrorKindTransport,
			StatusCode: constants.HTTPStatusBadRequest,
			Message:    fmt.Sprintf("building request: %v", err),
		}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.authHeader != "" {
		httpReq.Header.Set("Authorization", c.authHeader)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	interceptReq := &gitea.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	retryReq, err := retryablehttp.FromRequest(httpReq)
	if err != nil {
		return nil, &gitea.Error{
			Kind:       gitea.ErrorKindTransport,
			StatusCode: constants.HTTPStatusBadRequest,
			Message:    fmt.Sprintf("building request: %v", err),
		}
	}

	httpResp, err := c.httpClient.Do(retryReq)
	if err != nil {
		return nil, &gitea.Error{
			Kind:       gitea.ErrorKindTransport,
			StatusCode: constants.HTTPStatusBadRequest,
			Message:    fmt.Sprintf("sending request: %v", err),
		}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &gitea.Error{
			Kind:       gitea.ErrorKindTransport,
			StatusCode: httpResp.StatusCode,
			Message:    fmt.Sprintf("reading response body: %v", err),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	var respErr error

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		respErr = &gitea.Error{
			Kind:       gitea.ErrorKindHTTP,
			StatusCode: httpResp.StatusCode,
			Message:    string(respBody),
		}
	}

	if c.interceptors != nil {
		interceptResp := &gitea.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      respErr,
		}

		err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
		if err != nil {
			return resp, err
		}
	}

	return resp, respErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
