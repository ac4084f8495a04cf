package gitea

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Request is the view of an outgoing API request handed to interceptors.
// Path is the endpoint path below the API prefix; Headers may be mutated
// to decorate the request before it is sent.
type Request struct {
	Method  string
	Path    string
	Headers http.Header
	Body    []byte
}

// Response is the view of a completed API call handed to response
// interceptors. Error is the *Error the transport mapped for a non-2xx
// status, nil on success.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor runs before a request is sent. Returning an error
// aborts the call.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain holds ordered request and response interceptors. Zero
// value is ready to use. Install one via Config.Interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates an empty interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs the request interceptors in order,
// stopping at the first failure.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response interceptors in order,
// stopping at the first failure.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs every outgoing request at debug level. The
// transport installs this pair when Debug and a Logger are configured.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs completed calls. Failed calls are logged
// at error level with the mapped status.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		}

		if resp.Error != nil {
			logger.Error("HTTP Response Error", fields)
		} else {
			logger.Debug("HTTP Response", fields)
		}

		return nil
	}
}

// RateLimitInterceptor spaces requests so that at most requestsPerSecond
// leave per second. Useful when a batch job talks to an instance behind a
// strict reverse-proxy limit. Waiting respects context cancellation.
func RateLimitInterceptor(requestsPerSecond int) RequestInterceptor {
	interval := time.Second / time.Duration(requestsPerSecond)

	var mu sync.Mutex

	var nextSlot time.Time

	return func(ctx context.Context, req *Request) error {
		mu.Lock()

		now := time.Now()
		if nextSlot.Before(now) {
			nextSlot = now
		}

		wait := nextSlot.Sub(now)
		nextSlot = nextSlot.Add(interval)

		mu.Unlock()

		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
