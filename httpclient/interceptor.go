package httpclient

import "github.com/google/uuid"

// RequestInterceptor mutates a Request before it is handed to the
// Transport. Interceptors run in registration order; the first error
// aborts the call.
//
// Common use cases:
//   - Adding authentication headers
//   - Injecting correlation IDs
//   - Stamping a User-Agent
type RequestInterceptor func(req *Request) error

// HeaderInterceptor returns an interceptor that sets a fixed header on
// every request. Existing values for the key are overwritten.
func HeaderInterceptor(key, value string) RequestInterceptor {
	return func(req *Request) error {
		if req.Headers == nil {
			req.Headers = make(map[string]string, 1)
		}
		req.Headers[key] = value
		return nil
	}
}

// RequestIDInterceptor returns an interceptor that stamps a fresh UUID
// under the given header on every request, preserving any value the
// endpoint already set.
func RequestIDInterceptor(header string) RequestInterceptor {
	return func(req *Request) error {
		if req.Headers == nil {
			req.Headers = make(map[string]string, 1)
		}
		if _, ok := req.Headers[header]; !ok {
			req.Headers[header] = uuid.NewString()
		}
		return nil
	}
}
