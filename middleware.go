package lookup

import (
	"log/slog"
	"runtime/debug"
	"time"
)

// Capability names the plugin method being called.
type Capability string

// Plugin capabilities, one per LookupPlugin method.
const (
	CapabilityRecipeTypes        Capability = "recipe_types"
	CapabilityRecipes            Capability = "recipes"
	CapabilityRecipesForFocus    Capability = "recipes_for_focus"
	CapabilityRecipeCategoryUIDs Capability = "recipe_category_uids"
)

// Call describes a single plugin capability invocation.
type Call struct {
	Plugin     PluginInfo
	Capability Capability
}

// Invoker performs a plugin call. A returned error is a plugin fault.
type Invoker func(call Call) error

// Middleware is a function that wraps an Invoker to add cross-cutting behavior.
// Middleware executes in FIFO order (first registered wraps first, onion model).
//
// Example usage:
//
//	countingMiddleware := func(next lookup.Invoker) lookup.Invoker {
//	    return func(call lookup.Call) error {
//	        calls[call.Plugin.ID]++
//	        return next(call)
//	    }
//	}
type Middleware func(next Invoker) Invoker

// chain wraps inner with mws so that mws[0] is outermost.
func chain(inner Invoker, mws ...Middleware) Invoker {
	for i := len(mws) - 1; i >= 0; i-- {
		inner = mws[i](inner)
	}
	return inner
}

// PanicRecoveryMiddleware returns a middleware that catches panics and converts
// them to a *PluginFaultError instead of crashing the host.
func PanicRecoveryMiddleware() Middleware {
	return func(next Invoker) Invoker {
		return func(call Call) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = NewPanicFault(call, r, debug.Stack())
				}
			}()
			return next(call)
		}
	}
}

// LatencyMiddleware returns a middleware that warns when a successful call takes
// longer than threshold. The result is never altered.
func LatencyMiddleware(threshold time.Duration, logger *slog.Logger) Middleware {
	return func(next Invoker) Invoker {
		return func(call Call) error {
			start := time.Now()
			if err := next(call); err != nil {
				return err
			}
			if elapsed := time.Since(start); elapsed > threshold {
				logger.Warn("recipe lookup plugin is slow",
					"plugin", call.Plugin.Name,
					"plugin_id", int(call.Plugin.ID),
					"capability", string(call.Capability),
					"elapsed", elapsed,
					"threshold", threshold)
			}
			return nil
		}
	}
}

// LoggingMiddleware returns a middleware that logs every plugin call at debug level.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Invoker) Invoker {
		return func(call Call) error {
			logger.Debug("invoking lookup plugin",
				"plugin", call.Plugin.Name,
				"capability", string(call.Capability))
			err := next(call)
			if err != nil {
				logger.Debug("lookup plugin call failed",
					"plugin", call.Plugin.Name,
					"capability", string(call.Capability),
					"error", err)
			} else {
				logger.Debug("lookup plugin call completed",
					"plugin", call.Plugin.Name,
					"capability", string(call.Capability))
			}
			return err
		}
	}
}
