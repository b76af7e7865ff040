package ingredients

import (
	"github.com/reglet-dev/reglet-lookup/codec"
)

// Info binds an ingredient type to its store and to the capabilities that
// render, identify and serialize its values.
type Info[T any] struct {
	typ      Type[T]
	helper   Helper[T]
	renderer Renderer[T]
	codec    codec.Codec[T]
	store    *Store[T]
}

// NewInfo creates the entry for typ seeded with ingredients.
// When c is nil the entry serializes values by their legacy uid.
func NewInfo[T any](typ Type[T], ingredients []T, helper Helper[T], renderer Renderer[T], c codec.Codec[T]) *Info[T] {
	info := &Info[T]{
		typ:      typ,
		helper:   helper,
		renderer: renderer,
		store:    NewStore(helper.UID),
	}
	if c == nil {
		c = NewLegacyUIDCodec(info)
	}
	info.codec = c
	info.store.Add(ingredients...)
	return info
}

// Type returns the ingredient type.
func (i *Info[T]) Type() Type[T] {
	return i.typ
}

// Helper returns the uid helper.
func (i *Info[T]) Helper() Helper[T] {
	return i.helper
}

// Renderer returns the renderer.
func (i *Info[T]) Renderer() Renderer[T] {
	return i.renderer
}

// Codec returns the codec, never nil.
func (i *Info[T]) Codec() codec.Codec[T] {
	return i.codec
}

// AllIngredients returns a live read-only view of every ingredient.
func (i *Info[T]) AllIngredients() View[T] {
	return i.store.View()
}

// AddIngredients adds or replaces ingredients by uid.
func (i *Info[T]) AddIngredients(ingredients ...T) {
	i.store.Add(ingredients...)
}

// RemoveIngredients removes the ingredients sharing a uid with any of ingredients.
func (i *Info[T]) RemoveIngredients(ingredients ...T) {
	i.store.Remove(ingredients...)
}

// IngredientByLegacyUID returns the ingredient whose uid is uid.
//
// Deprecated: look ingredients up by value and use the codec for serialization.
func (i *Info[T]) IngredientByLegacyUID(uid string) (T, bool) {
	return i.store.ByUID(uid)
}
