package codec

import (
	"encoding/json"
	"fmt"
)

// JSONCodec implements Codec with encoding/json.
type JSONCodec[T any] struct{}

// NewJSONCodec creates a new JSONCodec.
func NewJSONCodec[T any]() Codec[T] {
	return JSONCodec[T]{}
}

// Encode marshals v as JSON.
func (JSONCodec[T]) Encode(v T) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return data, nil
}

// Decode unmarshals JSON bytes into a T.
func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decoding JSON: %w", err)
	}
	return v, nil
}
