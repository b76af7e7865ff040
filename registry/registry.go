// Package registry keeps a JSON schema for every serializable ingredient type.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/reglet-dev/reglet-lookup/plugin/values"
)

// ErrDuplicateKind is returned when a schema is registered twice for one ingredient type.
var ErrDuplicateKind = errors.New("ingredient type already has a schema")

// Registry implements SchemaRegistry using in-memory storage.
type Registry struct {
	mu        sync.RWMutex
	schemas   map[values.UID]string
	order     []values.UID
	reflector *jsonschema.Reflector
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithAllowAdditionalProperties lets generated schemas accept unknown object fields.
func WithAllowAdditionalProperties(allow bool) RegistryOption {
	return func(r *Registry) {
		r.reflector.AllowAdditionalProperties = allow
	}
}

// NewRegistry creates a new schema registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		schemas:   make(map[values.UID]string),
		reflector: new(jsonschema.Reflector),
	}

	r.reflector.ExpandedStruct = true
	r.reflector.DoNotReference = true
	r.reflector.Anonymous = true

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a schema for an ingredient type.
// model can be a Go value or reflect.Type (to generate schema), or a raw JSON schema
// string, map or byte slice.
func (r *Registry) Register(kind values.UID, model any) error {
	schema, err := r.schemaFor(model)
	if err != nil {
		return fmt.Errorf("schema for %s: %w", kind, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
	}
	r.schemas[kind] = schema
	r.order = append(r.order, kind)
	return nil
}

func (r *Registry) schemaFor(model any) (string, error) {
	switch v := model.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal schema map: %w", err)
		}
		return string(b), nil
	case reflect.Type:
		return r.reflectType(v)
	case nil:
		return "", errors.New("nil model")
	}
	return r.reflectType(reflect.TypeOf(model))
}

func (r *Registry) reflectType(t reflect.Type) (string, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	// ExpandedStruct inlines the root definition, which only structs have.
	reflector := *r.reflector
	reflector.ExpandedStruct = t.Kind() == reflect.Struct
	s := reflector.ReflectFromType(t)
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal generated schema: %w", err)
	}
	return string(b), nil
}

// Schema retrieves the JSON schema for an ingredient type.
func (r *Registry) Schema(kind values.UID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[kind]
	return s, ok
}

// Kinds returns all registered ingredient types in registration order.
func (r *Registry) Kinds() []values.UID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]values.UID, len(r.order))
	copy(out, r.order)
	return out
}
