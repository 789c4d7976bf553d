package httpclient

import "github.com/rs/zerolog"

// Option configures a Client.
type Option func(*Client)

// WithTransport injects the Transport used to perform requests. This is
// the substitution point for test doubles (see MockTransport) and
// decorators (see NewInstrumentedTransport).
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithDecoder replaces the response body decoder. The default is
// JSONCodec.
func WithDecoder(d Decoder) Option {
	return func(c *Client) {
		c.decoder = d
	}
}

// WithRequestInterceptor appends an interceptor that runs before every
// transport invocation, in registration order. An interceptor error
// aborts the call and is returned to the caller unchanged.
func WithRequestInterceptor(i RequestInterceptor) Option {
	return func(c *Client) {
		c.interceptors = append(c.interceptors, i)
	}
}

// WithDebug enables request/response debug logging. The core logs
// nothing unless this is set.
func WithDebug(enabled bool) Option {
	return func(c *Client) {
		c.debug = enabled
	}
}

// WithLogger replaces the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
