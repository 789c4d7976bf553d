package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Response is the transport's successful outcome: the raw body bytes
// plus the response metadata the Client validates against. It is
// consumed immediately by the Client and never persisted.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Headers are the response headers.
	Headers http.Header

	// Body is the fully read response body.
	Body []byte
}

// Transport performs the actual network I/O for one Request. It is the
// sole abstraction boundary of the package: substituting a Transport
// swaps the real network stack for a deterministic test double, adds
// instrumentation, or anything in between.
//
// Perform returns either a Response or a transport-level failure.
// Cancellation and timeouts are entirely the Transport's concern; the
// Client has no timeout logic of its own.
type Transport interface {
	Perform(ctx context.Context, req *Request) (*Response, error)
}

// NetTransport is the stdlib-backed Transport. It builds an
// *http.Client from a Config (see DefaultConfig) and reads response
// bodies fully before returning.
type NetTransport struct {
	httpClient *http.Client
}

var _ Transport = (*NetTransport)(nil)

// NewNetTransport creates a NetTransport from cfg.
func NewNetTransport(cfg Config) *NetTransport {
	return &NetTransport{
		httpClient: &http.Client{
			Transport: cfg.buildTransport(),
			Timeout:   cfg.Timeout,
		},
	}
}

// NewNetTransportFromClient wraps an existing *http.Client. Use this
// when the caller already owns a tuned client (custom proxy, TLS,
// cookie jar).
func NewNetTransportFromClient(httpClient *http.Client) *NetTransport {
	return &NetTransport{httpClient: httpClient}
}

// Perform implements Transport. The request body, when present, is
// replayed from the descriptor's byte slice; ctx cancellation aborts
// the in-flight call through the underlying http.Client.
func (t *NetTransport) Perform(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
	}, nil
}
