package httpclient

import (
	"net/url"

	"github.com/courier-labs/courier-go/endpoint"
)

// Builder deterministically transforms an endpoint descriptor, plus an
// optional payload, into a transport-ready Request. It performs no
// network access and holds no per-call state, so a single Builder is
// safe to share across goroutines.
type Builder struct {
	encoder Encoder
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithEncoder replaces the payload encoder. The default is JSONCodec.
func WithEncoder(enc Encoder) BuilderOption {
	return func(b *Builder) {
		b.encoder = enc
	}
}

// NewBuilder creates a Builder. Without options it encodes payloads as
// JSON.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{encoder: JSONCodec{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assembles one Request from ep and an optional payload (nil
// means no body).
//
// The base URL and path are concatenated and parsed; a parse failure is
// reported as *MalformedURLError. Query parameters are appended in map
// order using each value's canonical string form; invalid values are
// silently dropped. Headers are copied verbatim. A non-nil payload is
// serialized with the configured Encoder, and any encoding failure is
// returned to the caller unchanged.
func (b *Builder) Build(ep endpoint.Endpoint, payload any) (*Request, error) {
	candidate := ep.BaseURL() + ep.Path()

	u, err := url.Parse(candidate)
	if err != nil {
		return nil, &MalformedURLError{Raw: candidate, Cause: err}
	}

	if params := ep.Parameters(); len(params) > 0 {
		q := u.Query()
		for key, value := range params {
			if !value.IsValid() {
				continue
			}
			q.Set(key, value.String())
		}
		u.RawQuery = q.Encode()
	}

	req := &Request{
		URL:    u.String(),
		Method: ep.Method().String(),
	}

	if headers := ep.Headers(); len(headers) > 0 {
		req.Headers = make(map[string]string, len(headers))
		for key, value := range headers {
			req.Headers[key] = value
		}
	}

	if payload != nil {
		data, err := b.encoder.Encode(payload)
		if err != nil {
			return nil, err
		}
		req.Body = data
	}

	return req, nil
}
