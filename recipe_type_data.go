package lookup

import "sync"

// RecipeTypeData binds a recipe category to the recipes hidden from default lookups.
// It is safe for concurrent use.
type RecipeTypeData[T comparable] struct {
	category RecipeCategory

	mu     sync.RWMutex
	hidden map[T]struct{}
}

// NewRecipeTypeData creates type data for category with nothing hidden.
func NewRecipeTypeData[T comparable](category RecipeCategory) *RecipeTypeData[T] {
	return &RecipeTypeData[T]{
		category: category,
		hidden:   make(map[T]struct{}),
	}
}

// Category returns the recipe category.
func (d *RecipeTypeData[T]) Category() RecipeCategory {
	return d.category
}

// Hide excludes recipes from lookups that do not ask for hidden recipes.
func (d *RecipeTypeData[T]) Hide(recipes ...T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range recipes {
		d.hidden[r] = struct{}{}
	}
}

// Unhide reverses Hide.
func (d *RecipeTypeData[T]) Unhide(recipes ...T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range recipes {
		delete(d.hidden, r)
	}
}

// IsHidden reports whether recipe is hidden.
func (d *RecipeTypeData[T]) IsHidden(recipe T) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.hidden[recipe]
	return ok
}

// HiddenCount returns the number of hidden recipes.
func (d *RecipeTypeData[T]) HiddenCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.hidden)
}
