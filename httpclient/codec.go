package httpclient

import (
	json "github.com/goccy/go-json"
)

// Encoder serializes a request payload to bytes. Builder uses it for
// non-nil payloads; its failures are propagated to Build's caller
// unchanged, never wrapped.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// Decoder parses response body bytes into the caller's value. Client
// wraps its failures as *DecodingError.
type Decoder interface {
	Decode(data []byte, v any) error
}

// JSONCodec implements Encoder and Decoder using JSON. Field names map
// directly to object keys, nested structures recurse, absent optional
// fields decode to their zero value.
type JSONCodec struct{}

var (
	_ Encoder = JSONCodec{}
	_ Decoder = JSONCodec{}
)

// Encode implements Encoder.
func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode implements Decoder.
func (JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
