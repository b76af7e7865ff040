package lookup

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/reglet-dev/reglet-lookup/config"
	"github.com/reglet-dev/reglet-lookup/plugin/values"
)

// PluginManager aggregates recipe lookups across plugins.
// The plugin list is fixed at construction with the internal plugin first.
// A plugin that faults is disabled for the lifetime of the manager; there is no way back.
// PluginManager is safe for concurrent use, and every plugin call runs on the caller's goroutine.
type PluginManager struct {
	plugins []registeredPlugin
	guard   *Guard
}

type registeredPlugin struct {
	info   PluginInfo
	plugin LookupPlugin
}

// ManagerOption configures a PluginManager.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	threshold   time.Duration
	logger      *slog.Logger
	middlewares []Middleware
	debugCalls  bool
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(c *managerConfig) { c.logger = l }
}

// WithSlowThreshold sets how long a plugin call may take before a warning is logged.
func WithSlowThreshold(d time.Duration) ManagerOption {
	return func(c *managerConfig) { c.threshold = d }
}

// WithMiddleware adds middleware around every plugin call.
func WithMiddleware(mws ...Middleware) ManagerOption {
	return func(c *managerConfig) { c.middlewares = append(c.middlewares, mws...) }
}

// WithConfig applies the threshold and call tracing settings of cfg.
func WithConfig(cfg config.Config) ManagerOption {
	return func(c *managerConfig) {
		c.threshold = cfg.SlowPluginThreshold
		c.debugCalls = cfg.DebugCalls
	}
}

// NewPluginManager creates a manager over internal followed by plugins, in order.
func NewPluginManager(internal LookupPlugin, plugins []LookupPlugin, opts ...ManagerOption) *PluginManager {
	cfg := managerConfig{
		threshold: DefaultSlowThreshold,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	mws := cfg.middlewares
	if cfg.debugCalls {
		mws = append([]Middleware{LoggingMiddleware(cfg.logger)}, mws...)
	}

	all := make([]registeredPlugin, 0, len(plugins)+1)
	for i, p := range append([]LookupPlugin{internal}, plugins...) {
		all = append(all, registeredPlugin{
			info:   PluginInfo{ID: PluginID(i), Name: pluginName(p)},
			plugin: p,
		})
	}

	return &PluginManager{
		plugins: all,
		guard:   NewGuard(cfg.threshold, cfg.logger, mws...),
	}
}

// Plugins describes every registered plugin in order, disabled ones included.
func (m *PluginManager) Plugins() []PluginInfo {
	out := make([]PluginInfo, len(m.plugins))
	for i, p := range m.plugins {
		out[i] = p.info
	}
	return out
}

// DisabledPlugins describes the plugins that have faulted.
func (m *PluginManager) DisabledPlugins() []PluginInfo {
	return m.guard.Disabled()
}

// IsDisabled reports whether the plugin with id has faulted.
func (m *PluginManager) IsDisabled(id PluginID) bool {
	return m.guard.IsDisabled(id)
}

// enabled yields the plugins not disabled at the moment each one is reached.
func (m *PluginManager) enabled() iter.Seq[registeredPlugin] {
	return func(yield func(registeredPlugin) bool) {
		for _, p := range m.plugins {
			if m.guard.IsDisabled(p.info.ID) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Recipes looks up the recipes of data's category across every enabled plugin.
//
// With an empty focus group each plugin is asked once for the whole category; otherwise
// each plugin is asked once per focus, in focus order. Results are concatenated in
// plugin-then-focus order and deduplicated keeping the first occurrence, so the internal
// plugin wins ties. Unless includeHidden is set, recipes hidden in data are dropped.
//
// A plugin is checked against the disabled set when it is reached. If it faults on one
// focus, its calls for the remaining foci of the same query still run.
//
// The sequence is lazy: plugins are called as it is consumed, again on every iteration.
func Recipes[T comparable](m *PluginManager, data *RecipeTypeData[T], focuses FocusGroup, includeHidden bool) iter.Seq[T] {
	category := data.Category()

	recipes := distinct(flatMap(m.enabled(), func(p registeredPlugin) iter.Seq[T] {
		return pluginRecipes[T](m, p, category, focuses)
	}))

	if !includeHidden {
		recipes = filter(recipes, func(r T) bool { return !data.IsHidden(r) })
	}
	return recipes
}

func pluginRecipes[T comparable](m *PluginManager, p registeredPlugin, category RecipeCategory, focuses FocusGroup) iter.Seq[T] {
	if focuses.IsEmpty() {
		return lazy(func() []T {
			call := Call{Plugin: p.info, Capability: CapabilityRecipes}
			return GuardedCall(m.guard, call, func() ([]T, error) {
				raw, err := p.plugin.Recipes(category)
				if err != nil {
					return nil, err
				}
				return castRecipes[T](raw)
			}, nil)
		})
	}

	return flatMap(focuses.All(), func(focus Focus) iter.Seq[T] {
		return lazy(func() []T {
			call := Call{Plugin: p.info, Capability: CapabilityRecipesForFocus}
			return GuardedCall(m.guard, call, func() ([]T, error) {
				raw, err := p.plugin.RecipesForFocus(category, focus)
				if err != nil {
					return nil, err
				}
				return castRecipes[T](raw)
			}, nil)
		})
	})
}

func castRecipes[T any](raw []any) ([]T, error) {
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		v, ok := r.(T)
		if !ok {
			var want T
			return nil, fmt.Errorf("%w: element %d is %T, want %T", ErrRecipeTypeMismatch, i, r, want)
		}
		out = append(out, v)
	}
	return out, nil
}

// RecipeCategoryUIDs lists the recipe categories that have recipes for any focus in focuses.
//
// For each focus, in order, and each enabled plugin, in order, the uids of the plugin's
// recipe types come first, followed by the plugin's legacy category uids when it implements
// LegacyCategoryLister. The legacy call runs even when the recipe types call faulted
// for the same focus. The result is deduplicated keeping the first occurrence.
// An empty focus group yields nothing.
func (m *PluginManager) RecipeCategoryUIDs(focuses FocusGroup) iter.Seq[values.UID] {
	return distinct(flatMap(focuses.All(), func(focus Focus) iter.Seq[values.UID] {
		return flatMap(m.enabled(), func(p registeredPlugin) iter.Seq[values.UID] {
			return m.pluginCategoryUIDs(p, focus)
		})
	}))
}

func (m *PluginManager) pluginCategoryUIDs(p registeredPlugin, focus Focus) iter.Seq[values.UID] {
	modern := mapSeq(lazy(func() []RecipeType {
		call := Call{Plugin: p.info, Capability: CapabilityRecipeTypes}
		return GuardedCall(m.guard, call, func() ([]RecipeType, error) {
			return p.plugin.RecipeTypes(focus)
		}, nil)
	}), func(rt RecipeType) values.UID { return rt.UID })

	legacy, ok := p.plugin.(LegacyCategoryLister)
	if !ok {
		return modern
	}

	return concat(modern, lazy(func() []values.UID {
		call := Call{Plugin: p.info, Capability: CapabilityRecipeCategoryUIDs}
		return GuardedCall(m.guard, call, func() ([]values.UID, error) {
			return legacy.RecipeCategoryUIDs(focus)
		}, nil)
	}))
}
