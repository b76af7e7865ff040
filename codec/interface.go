// Package codec serializes ingredients.
package codec

// Codec encodes and decodes values of one ingredient type.
type Codec[T any] interface {
	// Encode serializes v.
	Encode(v T) ([]byte, error)

	// Decode deserializes data produced by Encode.
	Decode(data []byte) (T, error)
}

// PayloadValidator checks a serialized payload before it is decoded.
type PayloadValidator interface {
	ValidatePayload(data []byte) error
}
