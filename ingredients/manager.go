package ingredients

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/reglet-dev/reglet-lookup/plugin/values"
)

// ErrDuplicateType is returned when an ingredient type is registered twice.
var ErrDuplicateType = errors.New("ingredient type already registered")

// SchemaRegistrar receives the Go type of every registered ingredient type.
type SchemaRegistrar interface {
	Register(kind values.UID, model any) error
}

// entry is the type-erased view of an *Info[T] kept by Manager.
type entry interface {
	typeUID() values.UID
	valueType() reflect.Type
	size() int
}

func (i *Info[T]) typeUID() values.UID      { return i.typ.UID() }
func (i *Info[T]) valueType() reflect.Type { return i.typ.ValueType() }
func (i *Info[T]) size() int                { return i.store.Len() }

// Manager owns the Info of every ingredient type, in registration order.
// It is safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	order   []values.UID
	entries map[values.UID]entry
	schemas SchemaRegistrar
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithSchemaRegistrar registers a schema for the Go type of every ingredient type added to the manager.
func WithSchemaRegistrar(r SchemaRegistrar) ManagerOption {
	return func(m *Manager) { m.schemas = r }
}

// NewManager creates an empty manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{entries: make(map[values.UID]entry)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds info to m.
func Register[T any](m *Manager, info *Info[T]) error {
	uid := info.typeUID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[uid]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateType, uid)
	}
	if m.schemas != nil {
		if err := m.schemas.Register(uid, info.valueType()); err != nil {
			return fmt.Errorf("registering schema for %s: %w", uid, err)
		}
	}
	m.entries[uid] = info
	m.order = append(m.order, uid)
	return nil
}

// InfoFor returns the Info registered for typ.
func InfoFor[T any](m *Manager, typ Type[T]) (*Info[T], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[typ.UID()]
	if !ok {
		return nil, false
	}
	info, ok := e.(*Info[T])
	return info, ok
}

// Types returns the registered ingredient type uids in registration order.
func (m *Manager) Types() []values.UID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]values.UID, len(m.order))
	copy(out, m.order)
	return out
}

// Count returns the number of ingredients stored for the type with uid.
func (m *Manager) Count(uid values.UID) (int, bool) {
	m.mu.RLock()
	e, ok := m.entries[uid]
	m.mu.RUnlock()
	if !ok {
		return 0, false
	}
	return e.size(), true
}

// ValueType returns the Go type of the ingredients of the type with uid.
func (m *Manager) ValueType(uid values.UID) (reflect.Type, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[uid]
	if !ok {
		return nil, false
	}
	return e.valueType(), true
}
