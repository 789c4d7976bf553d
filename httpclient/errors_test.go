package httpclient

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid response",
			err: &InvalidResponseError{
				StatusCode:  404,
				URL:         "https://example.com/x",
				Description: http.StatusText(404),
			},
			want: "httpclient: invalid response 404 (Not Found) from https://example.com/x",
		},
		{
			name: "decoding error",
			err:  &DecodingError{Cause: errors.New("unexpected token")},
			want: "httpclient: decoding response body: unexpected token",
		},
		{
			name: "network error",
			err:  &NetworkError{Cause: errors.New("connection refused")},
			want: "httpclient: transport: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "given invalid response error, then true",
			err:  &InvalidResponseError{StatusCode: 500},
			want: true,
		},
		{
			name: "given decoding error, then true",
			err:  &DecodingError{Cause: errors.New("bad json")},
			want: true,
		},
		{
			name: "given network error, then true",
			err:  &NetworkError{Cause: errors.New("refused")},
			want: true,
		},
		{
			name: "given wrapped network error, then true",
			err:  errors.Join(errors.New("outer"), &NetworkError{Cause: errors.New("inner")}),
			want: true,
		},
		{
			name: "given plain error, then false",
			err:  errors.New("anything"),
			want: false,
		},
		{
			name: "given malformed url error, then false",
			err:  &MalformedURLError{Raw: ":", Cause: errors.New("parse")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isClientError(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")

	assert.ErrorIs(t, &NetworkError{Cause: cause}, cause)
	assert.ErrorIs(t, &DecodingError{Cause: cause}, cause)
	assert.ErrorIs(t, &MalformedURLError{Raw: "x", Cause: cause}, cause)
}
