package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client executes Requests through an injected Transport, validates the
// outcome, and decodes the body into the caller's type.
//
// A Client holds no per-call state: every invocation of Do operates on
// its own descriptor and outcome values, so one Client is safe to use
// from any number of goroutines without coordination. It performs
// exactly one transport invocation per call — no retries, no caching,
// and no logging unless debug output is explicitly enabled.
type Client struct {
	transport    Transport
	decoder      Decoder
	interceptors []RequestInterceptor
	debug        bool
	logger       zerolog.Logger
}

// New creates a Client. Without options it sends requests through a
// NetTransport built from DefaultConfig and decodes bodies as JSON.
//
//	client := httpclient.New(
//	    httpclient.WithTransport(httpclient.NewNetTransport(cfg)),
//	    httpclient.WithDebug(true),
//	)
func New(opts ...Option) *Client {
	c := &Client{
		decoder: JSONCodec{},
		logger:  debugLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewNetTransport(DefaultConfig())
	}
	return c
}

// Do executes req and decodes the response body into result, which must
// be a pointer. A nil result discards the body after validation.
//
// Failures are classified into exactly one variant before reaching the
// caller, in strict precedence order:
//
//  1. A transport failure short-circuits everything and is wrapped as
//     *NetworkError (unless the transport already surfaced a classified
//     client error, which passes through unchanged).
//  2. An outcome with no interpretable HTTP response yields
//     *InvalidResponseError with StatusCode StatusUnknown.
//  3. A status code outside [200, 300) yields *InvalidResponseError
//     carrying the standard reason phrase and the response headers.
//  4. Only after validation passes can a decode failure occur; it is
//     wrapped as *DecodingError.
//
// Errors returned by request interceptors are propagated unchanged;
// interceptors run before the transport is invoked.
func (c *Client) Do(ctx context.Context, req *Request, result any) error {
	for _, interceptor := range c.interceptors {
		if err := interceptor(req); err != nil {
			return err
		}
	}

	if c.debug {
		logRequest(c.logger, req)
	}

	start := time.Now()
	resp, err := c.transport.Perform(ctx, req)
	if err != nil {
		if isClientError(err) {
			return err
		}
		return &NetworkError{Cause: err}
	}

	if resp == nil {
		return &InvalidResponseError{
			StatusCode:  StatusUnknown,
			URL:         req.URL,
			Description: "Invalid response type",
		}
	}

	if c.debug {
		logResponse(c.logger, resp, time.Since(start))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &InvalidResponseError{
			StatusCode:  resp.StatusCode,
			URL:         req.URL,
			Description: http.StatusText(resp.StatusCode),
			Headers:     resp.Headers,
		}
	}

	if result == nil {
		return nil
	}
	if err := c.decoder.Decode(resp.Body, result); err != nil {
		return &DecodingError{Cause: err}
	}
	return nil
}

// Execute runs req through c and returns the decoded value of type T.
//
//	user, err := httpclient.Execute[User](ctx, client, req)
func Execute[T any](ctx context.Context, c *Client, req *Request) (T, error) {
	var out T
	if err := c.Do(ctx, req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
