package httpclient

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
)

// MockTransport is a deterministic in-memory Transport for tests. It
// serves stubbed outcomes (first matching stub wins, then the default)
// and records every Request it sees.
type MockTransport struct {
	mu          sync.RWMutex
	stubs       []mockStub
	defaultResp *Response
	defaultErr  error
	requests    []*Request
}

type mockStub struct {
	matcher  func(*Request) bool
	response *Response
	err      error
}

var _ Transport = (*MockTransport)(nil)

// NewMockTransport creates an empty MockTransport.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// StubResponse makes all otherwise unmatched requests return the given
// status and body.
func (m *MockTransport) StubResponse(statusCode int, body string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultResp = &Response{
		StatusCode: statusCode,
		Headers:    make(http.Header),
		Body:       []byte(body),
	}
	return m
}

// StubHeaders attaches headers to the default stubbed response.
// StubResponse must be called first.
func (m *MockTransport) StubHeaders(headers http.Header) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.defaultResp != nil {
		m.defaultResp.Headers = headers.Clone()
	}
	return m
}

// StubError makes all otherwise unmatched requests fail with err.
func (m *MockTransport) StubError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultErr = err
	return m
}

// StubNilResponse makes all otherwise unmatched requests resolve with
// neither a response nor an error, simulating a transport whose outcome
// cannot be interpreted as an HTTP response.
func (m *MockTransport) StubNilResponse() *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultResp = nil
	m.defaultErr = nil
	m.stubs = append(m.stubs, mockStub{
		matcher: func(*Request) bool { return true },
	})
	return m
}

// StubPath stubs requests whose URL contains path.
func (m *MockTransport) StubPath(path string, statusCode int, body string) *MockTransport {
	return m.StubFunc(func(req *Request) bool {
		return strings.Contains(req.URL, path)
	}, statusCode, body)
}

// StubMethod stubs requests with the given method.
func (m *MockTransport) StubMethod(method string, statusCode int, body string) *MockTransport {
	return m.StubFunc(func(req *Request) bool {
		return req.Method == method
	}, statusCode, body)
}

// StubFunc stubs requests matching the predicate.
func (m *MockTransport) StubFunc(
	matcher func(*Request) bool,
	statusCode int,
	body string,
) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stubs = append(m.stubs, mockStub{
		matcher: matcher,
		response: &Response{
			StatusCode: statusCode,
			Headers:    make(http.Header),
			Body:       []byte(body),
		},
	})
	return m
}

// StubFuncError stubs requests matching the predicate to fail with err.
func (m *MockTransport) StubFuncError(matcher func(*Request) bool, err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stubs = append(m.stubs, mockStub{matcher: matcher, err: err})
	return m
}

// Perform implements Transport.
func (m *MockTransport) Perform(_ context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.stubs {
		if s.matcher(req) {
			if s.err != nil {
				return nil, s.err
			}
			return cloneResponse(s.response), nil
		}
	}

	if m.defaultErr != nil {
		return nil, m.defaultErr
	}
	if m.defaultResp != nil {
		return cloneResponse(m.defaultResp), nil
	}

	return nil, errors.New("no stub found for request: " + req.Method + " " + req.URL)
}

// Requests returns a copy of all requests made through this transport.
func (m *MockTransport) Requests() []*Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Request{}, m.requests...)
}

// RequestCount returns the number of requests made.
func (m *MockTransport) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

// LastRequest returns the most recent request, or nil if none.
func (m *MockTransport) LastRequest() *Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Reset clears all recorded requests and stubs.
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
	m.stubs = nil
	m.defaultResp = nil
	m.defaultErr = nil
}

func cloneResponse(resp *Response) *Response {
	if resp == nil {
		return nil
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers.Clone(),
		Body:       append([]byte(nil), resp.Body...),
	}
}
