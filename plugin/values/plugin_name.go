package values

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPluginName is returned when a plugin name fails validation.
var ErrInvalidPluginName = errors.New("invalid plugin name")

// PluginName represents a validated plugin identifier, such as "examplemod:recipes".
// Enforces non-empty, trimmed plugin names.
type PluginName struct {
	value string
}

// NewPluginName creates a PluginName with strict validation.
// A valid plugin name must:
// - Be non-empty
// - contain only alphanumeric characters, underscores, hyphens, dots and colons
// - NOT contain path separators or parent directory references
// - Be at most 64 characters long
func NewPluginName(name string) (PluginName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PluginName{}, fmt.Errorf("%w: cannot be empty", ErrInvalidPluginName)
	}

	if len(name) > 64 {
		return PluginName{}, fmt.Errorf("%w: too long (max 64 chars)", ErrInvalidPluginName)
	}

	if strings.ContainsAny(name, `/\`) {
		return PluginName{}, fmt.Errorf("%w: cannot contain path separators", ErrInvalidPluginName)
	}

	if strings.Contains(name, "..") {
		return PluginName{}, fmt.Errorf("%w: cannot contain parent directory references", ErrInvalidPluginName)
	}

	for _, ch := range name {
		if !isValidPluginChar(ch) {
			return PluginName{}, fmt.Errorf("%w: %q must contain only alphanumeric characters, underscores, hyphens, dots and colons", ErrInvalidPluginName, name)
		}
	}

	return PluginName{value: name}, nil
}

func isValidPluginChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' ||
		r == '-' ||
		r == '.' ||
		r == ':'
}

// MustNewPluginName creates a PluginName or panics
func MustNewPluginName(name string) PluginName {
	pn, err := NewPluginName(name)
	if err != nil {
		panic(err)
	}
	return pn
}

// String returns the string representation
func (p PluginName) String() string {
	return p.value
}

// IsEmpty returns true if this is the zero value
func (p PluginName) IsEmpty() bool {
	return p.value == ""
}

// Equals checks if two plugin names are equal
func (p PluginName) Equals(other PluginName) bool {
	return p.value == other.value
}

// MarshalJSON implements json.Marshaler.
func (p PluginName) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *PluginName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPluginName, err)
	}

	name, err := NewPluginName(s)
	if err != nil {
		return err
	}
	*p = name
	return nil
}
