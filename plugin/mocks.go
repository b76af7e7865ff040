package plugin

import (
	"io"
	"log/slog"
	"sync"
	"time"

	lookup "github.com/reglet-dev/reglet-lookup"
	"github.com/reglet-dev/reglet-lookup/plugin/values"
)

// MockPlugin implements lookup.LookupPlugin for testing.
// Answers are keyed by recipe type uid and by focus value.
type MockPlugin struct {
	Name string

	// ByCategory answers Recipes.
	ByCategory map[values.UID][]any
	// ByFocus answers RecipesForFocus, keyed by focus value; the category is ignored.
	ByFocus map[any][]any
	// Types answers RecipeTypes, keyed by focus value.
	Types map[any][]lookup.RecipeType

	// Err is returned by every capability.
	Err error
	// CapabilityErr is returned by the named capability only.
	CapabilityErr map[lookup.Capability]error
	// PanicWith, when non-nil, is panicked by every capability.
	PanicWith any
	// Delay is slept before answering.
	Delay time.Duration

	mu    sync.Mutex
	calls map[lookup.Capability]int
}

// PluginName returns Name.
func (m *MockPlugin) PluginName() string {
	return m.Name
}

// RecipeTypes answers from Types.
func (m *MockPlugin) RecipeTypes(focus lookup.Focus) ([]lookup.RecipeType, error) {
	if err := m.enter(lookup.CapabilityRecipeTypes); err != nil {
		return nil, err
	}
	return m.Types[focus.Value], nil
}

// Recipes answers from ByCategory.
func (m *MockPlugin) Recipes(category lookup.RecipeCategory) ([]any, error) {
	if err := m.enter(lookup.CapabilityRecipes); err != nil {
		return nil, err
	}
	return m.ByCategory[category.RecipeType().UID], nil
}

// RecipesForFocus answers from ByFocus.
func (m *MockPlugin) RecipesForFocus(category lookup.RecipeCategory, focus lookup.Focus) ([]any, error) {
	if err := m.enter(lookup.CapabilityRecipesForFocus); err != nil {
		return nil, err
	}
	return m.ByFocus[focus.Value], nil
}

// Calls returns how often capability was invoked.
func (m *MockPlugin) Calls(capability lookup.Capability) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[capability]
}

// TotalCalls returns how often any capability was invoked.
func (m *MockPlugin) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

func (m *MockPlugin) enter(capability lookup.Capability) error {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[lookup.Capability]int)
	}
	m.calls[capability]++
	m.mu.Unlock()

	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	if m.PanicWith != nil {
		panic(m.PanicWith)
	}
	if err, ok := m.CapabilityErr[capability]; ok {
		return err
	}
	return m.Err
}

// MockLegacyPlugin is a MockPlugin that also implements lookup.LegacyCategoryLister.
type MockLegacyPlugin struct {
	MockPlugin

	// LegacyUIDs answers RecipeCategoryUIDs, keyed by focus value.
	LegacyUIDs map[any][]values.UID
	// LegacyErr is returned by RecipeCategoryUIDs only.
	LegacyErr error
}

// RecipeCategoryUIDs answers from LegacyUIDs.
func (m *MockLegacyPlugin) RecipeCategoryUIDs(focus lookup.Focus) ([]values.UID, error) {
	if err := m.enter(lookup.CapabilityRecipeCategoryUIDs); err != nil {
		return nil, err
	}
	if m.LegacyErr != nil {
		return nil, m.LegacyErr
	}
	return m.LegacyUIDs[focus.Value], nil
}

// MockCategory implements lookup.RecipeCategory.
type MockCategory struct {
	Type lookup.RecipeType
}

// RecipeType returns Type.
func (c MockCategory) RecipeType() lookup.RecipeType {
	return c.Type
}

// NewTestLogger returns a logger that discards everything.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
