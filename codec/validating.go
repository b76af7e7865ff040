package codec

import "fmt"

// ValidatingCodec checks payloads with a PayloadValidator before handing them to the inner codec.
// Encoded output is validated too, so a codec never produces data it would refuse to read.
type ValidatingCodec[T any] struct {
	inner     Codec[T]
	validator PayloadValidator
}

// NewValidatingCodec wraps inner.
func NewValidatingCodec[T any](inner Codec[T], validator PayloadValidator) *ValidatingCodec[T] {
	return &ValidatingCodec[T]{inner: inner, validator: validator}
}

// Encode serializes v and validates the result.
func (c *ValidatingCodec[T]) Encode(v T) ([]byte, error) {
	data, err := c.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if err := c.validator.ValidatePayload(data); err != nil {
		return nil, fmt.Errorf("encoded payload rejected: %w", err)
	}
	return data, nil
}

// Decode validates data and deserializes it.
func (c *ValidatingCodec[T]) Decode(data []byte) (T, error) {
	if err := c.validator.ValidatePayload(data); err != nil {
		var zero T
		return zero, fmt.Errorf("payload rejected: %w", err)
	}
	return c.inner.Decode(data)
}
