package ingredients

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownLegacyUID is returned when decoding a uid that no stored ingredient has.
var ErrUnknownLegacyUID = errors.New("unknown legacy uid")

// LegacyUIDCodec serializes an ingredient as its uid, a JSON string, and resolves it back
// through the ingredients currently stored in an Info.
type LegacyUIDCodec[T any] struct {
	info *Info[T]
}

// NewLegacyUIDCodec creates a codec backed by info.
func NewLegacyUIDCodec[T any](info *Info[T]) *LegacyUIDCodec[T] {
	return &LegacyUIDCodec[T]{info: info}
}

// Encode returns the ingredient's uid as a JSON string.
func (c *LegacyUIDCodec[T]) Encode(v T) ([]byte, error) {
	return json.Marshal(c.info.helper.UID(v))
}

// Decode looks the uid up in the backing store.
func (c *LegacyUIDCodec[T]) Decode(data []byte) (T, error) {
	var zero T
	var uid string
	if err := json.Unmarshal(data, &uid); err != nil {
		return zero, fmt.Errorf("decoding legacy uid: %w", err)
	}
	//nolint:staticcheck // the legacy codec is the one caller that must use the legacy lookup
	v, ok := c.info.IngredientByLegacyUID(uid)
	if !ok {
		return zero, fmt.Errorf("%w: %q (%s)", ErrUnknownLegacyUID, uid, c.info.typ)
	}
	return v, nil
}
