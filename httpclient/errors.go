package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusUnknown is the sentinel status code reported when a transport
// outcome could not be interpreted as a structured HTTP response.
const StatusUnknown = -1

// InvalidResponseError reports a response that failed validation:
// either the status code fell outside [200, 300), or the transport
// outcome carried no interpretable HTTP response at all (in which case
// StatusCode is StatusUnknown and Headers is nil).
type InvalidResponseError struct {
	// StatusCode is the HTTP status code, or StatusUnknown.
	StatusCode int

	// URL is the request URL the response belongs to.
	URL string

	// Description is the standard reason phrase for StatusCode, or
	// "Invalid response type" for an uninterpretable outcome.
	Description string

	// Headers are the response headers, when a response was received.
	Headers http.Header
}

// Error implements error.
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("httpclient: invalid response %d (%s) from %s", e.StatusCode, e.Description, e.URL)
}

// DecodingError reports a response body that did not parse into the
// requested type. Status validation had already passed when this error
// is produced.
type DecodingError struct {
	Cause error
}

// Error implements error.
func (e *DecodingError) Error() string {
	return "httpclient: decoding response body: " + e.Cause.Error()
}

// Unwrap returns the underlying decode failure.
func (e *DecodingError) Unwrap() error { return e.Cause }

// NetworkError reports a failure of the transport itself: connectivity,
// DNS, TLS, cancellation, and so on.
type NetworkError struct {
	Cause error
}

// Error implements error.
func (e *NetworkError) Error() string {
	return "httpclient: transport: " + e.Cause.Error()
}

// Unwrap returns the underlying transport failure.
func (e *NetworkError) Unwrap() error { return e.Cause }

// MalformedURLError is a construction error reported by Builder.Build
// when the combined base URL and path do not parse. It is distinct from
// the Client's taxonomy: it never reaches Client.Do.
type MalformedURLError struct {
	// Raw is the candidate URL that failed to parse.
	Raw string

	// Cause is the parse failure.
	Cause error
}

// Error implements error.
func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("httpclient: malformed url %q: %v", e.Raw, e.Cause)
}

// Unwrap returns the underlying parse failure.
func (e *MalformedURLError) Unwrap() error { return e.Cause }

// isClientError reports whether err already belongs to the Client's
// taxonomy. Transports may surface classified errors (for example a
// decorator that validates upstream); those pass through unwrapped.
func isClientError(err error) bool {
	var (
		invalid *InvalidResponseError
		decode  *DecodingError
		network *NetworkError
	)
	return errors.As(err, &invalid) || errors.As(err, &decode) || errors.As(err, &network)
}
