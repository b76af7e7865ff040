package registry

import "github.com/reglet-dev/reglet-lookup/plugin/values"

// SchemaRegistry manages JSON schemas for ingredient types.
type SchemaRegistry interface {
	// Register adds a schema for an ingredient type.
	// model can be a Go value (to generate schema) or a JSON schema string/map/bytes.
	Register(kind values.UID, model any) error

	// Schema returns the JSON schema for an ingredient type.
	Schema(kind values.UID) (string, bool)

	// Kinds returns all registered ingredient types in registration order.
	Kinds() []values.UID
}
