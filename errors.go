package lookup

import (
	"errors"
	"fmt"
)

// Sentinel errors for plugin faults.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrPluginFault is matched by every fault raised while calling a plugin.
	ErrPluginFault = errors.New("plugin fault")

	// ErrRecipeTypeMismatch is returned when a plugin answers with a recipe of the wrong type.
	ErrRecipeTypeMismatch = errors.New("recipe type mismatch")
)

// PluginFaultError records a plugin capability call that panicked or returned an error.
type PluginFaultError struct {
	Plugin     PluginInfo
	Capability Capability
	// Cause is the error returned by the plugin, or the panic value as an error.
	Cause error
	// Panic is the recovered value when the plugin panicked, nil otherwise.
	Panic any
	Stack []byte
}

func (e *PluginFaultError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("plugin %s panicked in %s: %v", e.Plugin, e.Capability, e.Panic)
	}
	return fmt.Sprintf("plugin %s failed in %s: %v", e.Plugin, e.Capability, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *PluginFaultError) Unwrap() error {
	return e.Cause
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, lookup.ErrPluginFault)
func (e *PluginFaultError) Is(target error) bool {
	return target == ErrPluginFault
}

// NewPanicFault wraps a recovered panic value.
func NewPanicFault(call Call, recovered any, stack []byte) *PluginFaultError {
	cause, ok := recovered.(error)
	if !ok {
		cause = fmt.Errorf("%v", recovered)
	}
	return &PluginFaultError{
		Plugin:     call.Plugin,
		Capability: call.Capability,
		Cause:      cause,
		Panic:      recovered,
		Stack:      stack,
	}
}

// asFault converts any error returned through the middleware chain into a *PluginFaultError.
func asFault(call Call, err error) *PluginFaultError {
	var fault *PluginFaultError
	if errors.As(err, &fault) {
		return fault
	}
	return &PluginFaultError{
		Plugin:     call.Plugin,
		Capability: call.Capability,
		Cause:      err,
	}
}
