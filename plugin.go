package lookup

import (
	"fmt"

	"github.com/reglet-dev/reglet-lookup/plugin/values"
)

// RecipeType identifies a kind of recipe, such as crafting or smelting.
type RecipeType struct {
	UID   values.UID
	Title string
}

// NewRecipeType creates a recipe type from a uid string. It panics if uid is invalid.
func NewRecipeType(uid, title string) RecipeType {
	return RecipeType{UID: values.MustParseUID(uid), Title: title}
}

// RecipeCategory is the recipe type descriptor handed to plugins when looking up recipes.
type RecipeCategory interface {
	RecipeType() RecipeType
}

// LookupPlugin answers recipe lookups. Implementations are untrusted: any method may
// panic, return an error, or run slowly. Every call goes through GuardedCall.
//
// Recipes returned as []any must all be of the Go type the category holds.
type LookupPlugin interface {
	// RecipeTypes lists the recipe types that have recipes for focus.
	RecipeTypes(focus Focus) ([]RecipeType, error)

	// Recipes lists every recipe in category.
	Recipes(category RecipeCategory) ([]any, error)

	// RecipesForFocus lists the recipes in category matching focus.
	RecipesForFocus(category RecipeCategory, focus Focus) ([]any, error)
}

// LegacyCategoryLister is the deprecated category discovery capability.
// When a plugin implements it, its answers are always merged with RecipeTypes.
//
// Deprecated: implement LookupPlugin.RecipeTypes instead.
type LegacyCategoryLister interface {
	RecipeCategoryUIDs(focus Focus) ([]values.UID, error)
}

// Named lets a plugin choose the name used for it in logs.
type Named interface {
	PluginName() string
}

// PluginID is the registration index of a plugin. It is the plugin's identity:
// two registrations of equal plugin values get different IDs.
type PluginID int

// PluginInfo describes a registered plugin.
type PluginInfo struct {
	ID   PluginID
	Name string
}

func (i PluginInfo) String() string {
	return fmt.Sprintf("%s#%d", i.Name, i.ID)
}

// pluginName returns the log name for p.
func pluginName(p LookupPlugin) string {
	if n, ok := p.(Named); ok {
		if name := safeName(n); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%T", p)
}

// safeName guards the one plugin call made outside GuardedCall.
func safeName(n Named) (name string) {
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()
	return n.PluginName()
}
