package httpclient

// Request is the concrete, transport-ready representation of one HTTP
// call. It is produced by Builder.Build and owned exclusively by the
// caller afterwards; the Builder retains no reference to it.
type Request struct {
	// URL is the fully assembled target, query string included.
	URL string

	// Method is the verb token, e.g. "GET".
	Method string

	// Headers maps unique header keys to single values, copied
	// verbatim from the endpoint descriptor.
	Headers map[string]string

	// Body holds the encoded payload bytes, or nil when the request
	// carries no body.
	Body []byte
}
