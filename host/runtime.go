// Package host wires configuration, plugin selection, recipe lookup and the ingredient
// registry into one runtime.
package host

import (
	"fmt"
	"log/slog"
	"os"

	lookup "github.com/reglet-dev/reglet-lookup"
	"github.com/reglet-dev/reglet-lookup/codec"
	"github.com/reglet-dev/reglet-lookup/config"
	"github.com/reglet-dev/reglet-lookup/ingredients"
	"github.com/reglet-dev/reglet-lookup/plugin"
	"github.com/reglet-dev/reglet-lookup/registry"
	"github.com/reglet-dev/reglet-lookup/validation"
)

// Runtime is a configured lookup host.
type Runtime struct {
	cfg         config.Config
	logger      *slog.Logger
	middlewares []lookup.Middleware

	plugins     *lookup.PluginManager
	rejected    []plugin.Rejection
	ingredients *ingredients.Manager
	schemas     *registry.Registry
	validator   *validation.Validator
}

// NewRuntime selects plugins from candidates and builds the plugin manager with internal first.
func NewRuntime(internal lookup.LookupPlugin, candidates []plugin.Candidate, opts ...Option) (*Runtime, error) {
	r := &Runtime{cfg: config.Default()}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	if r.logger == nil {
		level, _ := r.cfg.Level()
		r.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	selector, err := plugin.NewSelector(r.cfg, plugin.WithLogger(r.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create plugin selector: %w", err)
	}
	accepted, rejected := selector.Select(candidates)
	r.rejected = rejected

	r.plugins = lookup.NewPluginManager(internal, accepted,
		lookup.WithConfig(r.cfg),
		lookup.WithLogger(r.logger),
		lookup.WithMiddleware(r.middlewares...),
	)

	r.schemas = registry.NewRegistry()
	r.validator = validation.NewValidator(r.schemas)
	r.ingredients = ingredients.NewManager(ingredients.WithSchemaRegistrar(r.schemas))

	r.logger.Info("lookup runtime ready",
		"plugins", len(accepted)+1,
		"rejected", len(rejected))

	return r, nil
}

// Config returns the configuration in effect.
func (r *Runtime) Config() config.Config {
	return r.cfg
}

// Plugins returns the plugin manager.
func (r *Runtime) Plugins() *lookup.PluginManager {
	return r.plugins
}

// Rejected returns the candidates that were not registered.
func (r *Runtime) Rejected() []plugin.Rejection {
	return r.rejected
}

// Ingredients returns the ingredient type manager.
func (r *Runtime) Ingredients() *ingredients.Manager {
	return r.ingredients
}

// Schemas returns the schema registry filled by ingredient type registration.
func (r *Runtime) Schemas() *registry.Registry {
	return r.schemas
}

// Validator returns the payload validator backed by Schemas.
func (r *Runtime) Validator() *validation.Validator {
	return r.validator
}

// JSONCodec returns a JSON codec for typ that validates payloads against the type's schema.
// typ must be registered before the codec is used.
func JSONCodec[T any](r *Runtime, typ ingredients.Type[T]) codec.Codec[T] {
	return codec.NewValidatingCodec(codec.NewJSONCodec[T](), r.validator.For(typ.UID()))
}
