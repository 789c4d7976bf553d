// Package endpoint defines the declarative description of a single HTTP
// operation: where it lives, which verb it uses, and which headers and
// query parameters it carries.
//
// An Endpoint is a read-only descriptor, independent of any concrete
// request. API bindings typically define one implementation per service
// and one value (or enum-like set of values) per operation:
//
//	type listUsers struct{ page int }
//
//	func (e listUsers) BaseURL() string                     { return "https://api.example.com" }
//	func (e listUsers) Path() string                        { return "/users" }
//	func (e listUsers) Method() endpoint.Method             { return endpoint.MethodGet }
//	func (e listUsers) Headers() map[string]string          { return nil }
//	func (e listUsers) Parameters() map[string]endpoint.Value {
//	    return map[string]endpoint.Value{"page": endpoint.Int(int64(e.page))}
//	}
//
// For one-off calls, Static provides a literal implementation so no new
// type is needed.
package endpoint

import "net/http"

// Method is the HTTP verb an Endpoint uses. The set is closed: only the
// five constants below are produced by this package, and each maps to
// its standard token.
type Method string

// Supported HTTP methods.
const (
	MethodGet    Method = http.MethodGet
	MethodPut    Method = http.MethodPut
	MethodPost   Method = http.MethodPost
	MethodHead   Method = http.MethodHead
	MethodDelete Method = http.MethodDelete
)

// String returns the verb token, e.g. "DELETE".
func (m Method) String() string {
	return string(m)
}

// Endpoint describes one HTTP operation declaratively.
//
// Implementations must be read-only: the returned values are treated as
// a snapshot and must not change between calls. BaseURL combined with
// Path must form a structurally valid URL once query parameters are
// appended; otherwise request construction fails.
//
// Headers and Parameters may return nil when the operation carries
// none.
type Endpoint interface {
	// BaseURL is the scheme and host portion, e.g. "https://api.example.com".
	BaseURL() string

	// Path is appended verbatim to BaseURL, e.g. "/users/42".
	Path() string

	// Method is the HTTP verb for this operation.
	Method() Method

	// Headers are copied verbatim onto the outgoing request.
	Headers() map[string]string

	// Parameters become the query string. Values that cannot be
	// canonically stringified are dropped (see Value).
	Parameters() map[string]Value
}

// Static is a literal Endpoint for callers that do not want to define
// their own descriptor type.
//
//	ep := endpoint.Static{
//	    Base:   "https://api.example.com",
//	    Route:  "/users",
//	    Verb:   endpoint.MethodGet,
//	    Query:  map[string]endpoint.Value{"page": endpoint.Int(1)},
//	}
type Static struct {
	Base   string
	Route  string
	Verb   Method
	Header map[string]string
	Query  map[string]Value
}

var _ Endpoint = Static{}

// BaseURL implements Endpoint.
func (s Static) BaseURL() string { return s.Base }

// Path implements Endpoint.
func (s Static) Path() string { return s.Route }

// Method implements Endpoint.
func (s Static) Method() Method { return s.Verb }

// Headers implements Endpoint.
func (s Static) Headers() map[string]string { return s.Header }

// Parameters implements Endpoint.
func (s Static) Parameters() map[string]Value { return s.Query }
