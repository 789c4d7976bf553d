package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courier-labs/courier-go/endpoint"
)

func TestNetTransport_Perform(t *testing.T) {
	var (
		gotMethod string
		gotHeader string
		gotBody   []byte
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Token")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	transport := NewNetTransport(DefaultConfig())

	resp, err := transport.Perform(context.Background(), &Request{
		URL:     server.URL + "/things",
		Method:  "POST",
		Headers: map[string]string{"X-Token": "secret"},
		Body:    []byte(`{"name":"thing"}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "secret", gotHeader)
	assert.Equal(t, `{"name":"thing"}`, string(gotBody))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
}

func TestNetTransport_Perform_NoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, int64(0), r.ContentLength)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	transport := NewNetTransport(DefaultConfig())

	resp, err := transport.Perform(context.Background(), &Request{
		URL:    server.URL,
		Method: "GET",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestNetTransport_Perform_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	defer close(block)

	transport := NewNetTransport(DefaultConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := transport.Perform(ctx, &Request{URL: server.URL, Method: "GET"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNetTransportFromClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewNetTransportFromClient(server.Client())

	resp, err := transport.Perform(context.Background(), &Request{URL: server.URL, Method: "GET"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/1", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("lang"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"John"}`))
	}))
	defer server.Close()

	builder := NewBuilder()
	req, err := builder.Build(endpoint.Static{
		Base:  server.URL,
		Route: "/users/1",
		Verb:  endpoint.MethodGet,
		Query: map[string]endpoint.Value{"lang": endpoint.String("golang")},
	}, nil)
	require.NoError(t, err)

	client := New()
	user, err := Execute[testUser](context.Background(), client, req)

	require.NoError(t, err)
	assert.Equal(t, testUser{ID: 1, Name: "John"}, user)
}

func TestClient_EndToEnd_NetworkFailure(t *testing.T) {
	// A closed server yields a connection-level failure, which must
	// surface as *NetworkError.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	serverURL := server.URL
	server.Close()

	client := New()
	err := client.Do(context.Background(), &Request{URL: serverURL, Method: "GET"}, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Error(t, netErr.Unwrap())
}
