// Package validation checks serialized ingredients against their registered JSON schemas.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/reglet-dev/reglet-lookup/codec"
	"github.com/reglet-dev/reglet-lookup/plugin/values"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrSchemaNotFound is returned when an ingredient type has no registered schema.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrInvalidPayload is returned when a payload does not satisfy its schema.
	ErrInvalidPayload = errors.New("invalid payload")
)

// SchemaSource supplies raw JSON schemas by ingredient type.
type SchemaSource interface {
	Schema(kind values.UID) (string, bool)
}

// Validator validates JSON payloads. Compiled schemas are cached per ingredient type.
type Validator struct {
	source SchemaSource

	mu       sync.Mutex
	compiled map[values.UID]*jsonschema.Schema
}

// NewValidator creates a validator over source.
func NewValidator(source SchemaSource) *Validator {
	return &Validator{
		source:   source,
		compiled: make(map[values.UID]*jsonschema.Schema),
	}
}

// Validate checks payload against the schema registered for kind.
func (v *Validator) Validate(kind values.UID, payload []byte) error {
	schema, err := v.schema(kind)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, kind, err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, kind, err)
	}
	return nil
}

// For binds the validator to one ingredient type.
func (v *Validator) For(kind values.UID) codec.PayloadValidator {
	return kindValidator{v: v, kind: kind}
}

func (v *Validator) schema(kind values.UID) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[kind]; ok {
		return s, nil
	}

	raw, ok := v.source.Schema(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, kind)
	}

	url := "mem://ingredients/" + kind.Namespace() + "/" + kind.Path() + ".json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, strings.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("loading schema for %s: %w", kind, err)
	}
	s, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling schema for %s: %w", kind, err)
	}

	v.compiled[kind] = s
	return s, nil
}

type kindValidator struct {
	v    *Validator
	kind values.UID
}

func (k kindValidator) ValidatePayload(data []byte) error {
	return k.v.Validate(k.kind, data)
}
