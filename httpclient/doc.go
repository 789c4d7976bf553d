// Package httpclient turns declarative endpoint descriptions into
// executable HTTP requests and decodes the responses into typed values.
//
// The package is deliberately small: a Builder assembles a transport-ready
// Request from an endpoint.Endpoint, and a Client sends that Request
// through a pluggable Transport, validates the status code, and decodes
// the body. There are no retries, no caching and no shared state between
// calls; cancellation and timeouts belong entirely to the Transport.
//
// # Quick Start
//
//	client := httpclient.New()
//	builder := httpclient.NewBuilder()
//
//	req, err := builder.Build(endpoint.Static{
//	    Base:  "https://api.example.com",
//	    Route: "/users/42",
//	    Verb:  endpoint.MethodGet,
//	}, nil)
//	if err != nil {
//	    return err
//	}
//
//	user, err := httpclient.Execute[User](ctx, client, req)
//
// # Error Taxonomy
//
// Every failure surfaced by Client is exactly one of three variants,
// matchable with errors.As:
//
//   - *InvalidResponseError — the response failed status validation
//   - *DecodingError — the body did not parse into the requested type
//   - *NetworkError — the transport itself failed
//
// The Builder reports its own construction errors (*MalformedURLError,
// or the encoder's failure propagated unchanged); they never reach the
// Client taxonomy.
//
// # Testing
//
// Transport is the substitution point. MockTransport is a deterministic
// in-memory implementation for tests:
//
//	mock := httpclient.NewMockTransport().StubResponse(200, `{"id":1}`)
//	client := httpclient.New(httpclient.WithTransport(mock))
package httpclient
