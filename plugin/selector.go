// Package plugin selects which lookup plugins a host registers.
package plugin

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	lookup "github.com/reglet-dev/reglet-lookup"
	"github.com/reglet-dev/reglet-lookup/config"
	"github.com/reglet-dev/reglet-lookup/plugin/values"
)

var (
	// ErrIncompatiblePlugin is returned when a plugin's API version fails the host constraint.
	ErrIncompatiblePlugin = errors.New("incompatible plugin")

	// ErrPluginDisabledByConfig is returned when a plugin name matches a disabled_plugins pattern.
	ErrPluginDisabledByConfig = errors.New("plugin disabled by config")
)

// Candidate is a plugin offered for registration.
type Candidate struct {
	Plugin lookup.LookupPlugin
	Name   values.PluginName
	// APIVersion is the lookup API version the plugin was built against.
	APIVersion string
}

// Rejection records why a candidate was not selected.
type Rejection struct {
	Name values.PluginName
	Err  error
}

// Selector filters candidates by configuration.
type Selector struct {
	disabled   []string
	constraint *semver.Constraints
	logger     *slog.Logger
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) SelectorOption {
	return func(s *Selector) { s.logger = l }
}

// NewSelector creates a selector from cfg.
func NewSelector(cfg config.Config, opts ...SelectorOption) (*Selector, error) {
	constraint, err := cfg.APIConstraint()
	if err != nil {
		return nil, err
	}
	for _, pattern := range cfg.DisabledPlugins {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: bad disabled_plugins pattern %q", config.ErrInvalidConfig, pattern)
		}
	}

	s := &Selector{
		disabled:   cfg.DisabledPlugins,
		constraint: constraint,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Select returns the plugins of the accepted candidates in their original order,
// plus the rejected candidates.
func (s *Selector) Select(candidates []Candidate) ([]lookup.LookupPlugin, []Rejection) {
	var (
		accepted []lookup.LookupPlugin
		rejected []Rejection
	)
	for _, c := range candidates {
		if err := s.check(c); err != nil {
			s.logger.Warn("lookup plugin not registered", "plugin", c.Name.String(), "error", err)
			rejected = append(rejected, Rejection{Name: c.Name, Err: err})
			continue
		}
		accepted = append(accepted, c.Plugin)
	}
	return accepted, rejected
}

func (s *Selector) check(c Candidate) error {
	for _, pattern := range s.disabled {
		if doublestar.MatchUnvalidated(pattern, c.Name.String()) {
			return fmt.Errorf("%w: matches %q", ErrPluginDisabledByConfig, pattern)
		}
	}

	v, err := semver.NewVersion(c.APIVersion)
	if err != nil {
		return fmt.Errorf("%w: invalid API version %q: %v", ErrIncompatiblePlugin, c.APIVersion, err)
	}
	if !s.constraint.Check(v) {
		return fmt.Errorf("%w: API version %s does not satisfy %s", ErrIncompatiblePlugin, v, s.constraint)
	}
	return nil
}
