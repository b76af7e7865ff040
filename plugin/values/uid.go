package values

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultNamespace is assumed when a uid string carries no namespace.
const DefaultNamespace = "minecraft"

// ErrInvalidUID is returned when a uid string cannot be parsed.
var ErrInvalidUID = errors.New("invalid uid")

// UID identifies a recipe type, recipe category or ingredient type.
// It has the form "namespace:path". UID is comparable and safe to use as a map key.
type UID struct {
	namespace string
	path      string
}

// NewUID creates a UID from its two parts.
func NewUID(namespace, path string) (UID, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	for _, ch := range namespace {
		if !isValidNamespaceChar(ch) {
			return UID{}, fmt.Errorf("%w: namespace %q contains %q", ErrInvalidUID, namespace, ch)
		}
	}
	if path == "" {
		return UID{}, fmt.Errorf("%w: empty path", ErrInvalidUID)
	}
	for _, ch := range path {
		if !isValidNamespaceChar(ch) && ch != '/' {
			return UID{}, fmt.Errorf("%w: path %q contains %q", ErrInvalidUID, path, ch)
		}
	}
	return UID{namespace: namespace, path: path}, nil
}

// ParseUID parses "namespace:path", or a bare "path" in the default namespace.
func ParseUID(s string) (UID, error) {
	s = strings.TrimSpace(s)
	namespace, path, found := strings.Cut(s, ":")
	if !found {
		return NewUID(DefaultNamespace, s)
	}
	return NewUID(namespace, path)
}

// MustParseUID parses a uid or panics
func MustParseUID(s string) UID {
	uid, err := ParseUID(s)
	if err != nil {
		panic(err)
	}
	return uid
}

func isValidNamespaceChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') ||
		r == '_' ||
		r == '-' ||
		r == '.'
}

// Namespace returns the namespace part.
func (u UID) Namespace() string {
	return u.namespace
}

// Path returns the path part.
func (u UID) Path() string {
	return u.path
}

// IsEmpty returns true if this is the zero value
func (u UID) IsEmpty() bool {
	return u.path == ""
}

// String returns the canonical "namespace:path" form.
func (u UID) String() string {
	if u.IsEmpty() {
		return ""
	}
	return u.namespace + ":" + u.path
}

// MarshalJSON implements json.Marshaler.
func (u UID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (u *UID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUID, err)
	}
	parsed, err := ParseUID(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
