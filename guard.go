package lookup

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

// DefaultSlowThreshold is how long a plugin call may take before a warning is logged.
const DefaultSlowThreshold = 10 * time.Millisecond

// Guard contains plugin faults. It owns the deny-list of disabled plugins, which only grows.
// Guard is safe for concurrent use.
type Guard struct {
	mu       sync.RWMutex
	disabled map[PluginID]PluginInfo

	invoke func(inner Invoker) Invoker
	logger *slog.Logger
}

// NewGuard creates a guard that warns about calls slower than threshold.
// Extra middleware runs inside panic recovery and latency measurement.
func NewGuard(threshold time.Duration, logger *slog.Logger, mws ...Middleware) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	all := append([]Middleware{
		PanicRecoveryMiddleware(),
		LatencyMiddleware(threshold, logger),
	}, mws...)

	return &Guard{
		disabled: make(map[PluginID]PluginInfo),
		invoke: func(inner Invoker) Invoker {
			return chain(inner, all...)
		},
		logger: logger,
	}
}

// IsDisabled reports whether the plugin with id has faulted.
func (g *Guard) IsDisabled(id PluginID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.disabled[id]
	return ok
}

// Disabled returns the disabled plugins ordered by ID.
func (g *Guard) Disabled() []PluginInfo {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]PluginInfo, 0, len(g.disabled))
	for _, info := range g.disabled {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b PluginInfo) int { return int(a.ID - b.ID) })
	return out
}

func (g *Guard) disable(fault *PluginFaultError) {
	g.mu.Lock()
	g.disabled[fault.Plugin.ID] = fault.Plugin
	g.mu.Unlock()

	attrs := []any{
		"plugin", fault.Plugin.Name,
		"plugin_id", int(fault.Plugin.ID),
		"capability", string(fault.Capability),
		"error", fault.Cause,
	}
	if fault.Stack != nil {
		attrs = append(attrs, "stack", string(fault.Stack))
	}
	g.logger.Error("recipe lookup plugin crashed, disabling it", attrs...)
}

// GuardedCall runs fn on behalf of the plugin described by call.
// If fn panics or returns an error, the fault is logged, the plugin is disabled for the
// lifetime of g, and fallback is returned. Slow calls are logged and their result kept.
func GuardedCall[T any](g *Guard, call Call, fn func() (T, error), fallback T) T {
	var result T
	inner := func(Call) error {
		r, err := fn()
		if err != nil {
			return err
		}
		result = r
		return nil
	}

	if err := g.invoke(inner)(call); err != nil {
		g.disable(asFault(call, err))
		return fallback
	}
	return result
}
