package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethod_String(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		want   string
	}{
		{name: "GET", method: MethodGet, want: "GET"},
		{name: "PUT", method: MethodPut, want: "PUT"},
		{name: "POST", method: MethodPost, want: "POST"},
		{name: "HEAD", method: MethodHead, want: "HEAD"},
		{name: "DELETE", method: MethodDelete, want: "DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.String())
		})
	}
}

func TestStatic_ImplementsEndpoint(t *testing.T) {
	ep := Static{
		Base:   "https://api.example.com",
		Route:  "/users",
		Verb:   MethodPost,
		Header: map[string]string{"Authorization": "Bearer token"},
		Query:  map[string]Value{"page": Int(2)},
	}

	assert.Equal(t, "https://api.example.com", ep.BaseURL())
	assert.Equal(t, "/users", ep.Path())
	assert.Equal(t, MethodPost, ep.Method())
	assert.Equal(t, "Bearer token", ep.Headers()["Authorization"])
	assert.Equal(t, "2", ep.Parameters()["page"].String())
}

func TestStatic_EmptyMappings(t *testing.T) {
	ep := Static{Base: "https://api.example.com", Route: "/ping", Verb: MethodGet}

	assert.Nil(t, ep.Headers())
	assert.Nil(t, ep.Parameters())
}
