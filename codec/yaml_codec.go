package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// YAMLCodec implements Codec with goccy/go-yaml.
type YAMLCodec[T any] struct{}

// NewYAMLCodec creates a new YAMLCodec.
func NewYAMLCodec[T any]() Codec[T] {
	return YAMLCodec[T]{}
}

// Encode marshals v as YAML.
func (YAMLCodec[T]) Encode(v T) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return data, nil
}

// Decode unmarshals YAML bytes into a T.
func (YAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decoding YAML: %w", err)
	}
	return v, nil
}
