package ingredients

import (
	"reflect"

	"github.com/reglet-dev/reglet-lookup/plugin/values"
)

// Type identifies an ingredient type whose values are of Go type T.
type Type[T any] struct {
	uid values.UID
}

// NewType creates an ingredient type. It panics if uid is invalid.
func NewType[T any](uid string) Type[T] {
	return Type[T]{uid: values.MustParseUID(uid)}
}

// UID returns the ingredient type uid.
func (t Type[T]) UID() values.UID {
	return t.uid
}

// ValueType returns the Go type of the ingredient values.
func (t Type[T]) ValueType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (t Type[T]) String() string {
	return t.uid.String()
}

// Helper derives the uid of an ingredient. Two values with the same uid are the same ingredient.
type Helper[T any] interface {
	UID(ingredient T) string
	DisplayName(ingredient T) string
}

// Renderer draws an ingredient for the presentation layer.
type Renderer[T any] interface {
	Tooltip(ingredient T) []string
}

// HelperFunc adapts a uid function into a Helper that uses the uid as display name.
type HelperFunc[T any] func(ingredient T) string

// UID calls f.
func (f HelperFunc[T]) UID(ingredient T) string {
	return f(ingredient)
}

// DisplayName calls f.
func (f HelperFunc[T]) DisplayName(ingredient T) string {
	return f(ingredient)
}
