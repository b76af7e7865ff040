package lookup

import (
	"fmt"
	"iter"
	"slices"
)

// FocusRole says how a focused value relates to the recipes being looked up.
type FocusRole int

const (
	// RoleInput focuses on recipes that consume the value.
	RoleInput FocusRole = iota
	// RoleOutput focuses on recipes that produce the value.
	RoleOutput
	// RoleCatalyst focuses on recipes that need the value present without consuming it.
	RoleCatalyst
	// RoleCraftingStation focuses on recipes performed in the value.
	RoleCraftingStation
)

func (r FocusRole) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleOutput:
		return "output"
	case RoleCatalyst:
		return "catalyst"
	case RoleCraftingStation:
		return "crafting_station"
	default:
		return fmt.Sprintf("FocusRole(%d)", int(r))
	}
}

// Focus is one opaque query constraint handed to plugins.
type Focus struct {
	Role  FocusRole
	Value any
}

// NewFocus creates a focus on value with the given role.
func NewFocus(role FocusRole, value any) Focus {
	return Focus{Role: role, Value: value}
}

// FocusGroup is an ordered, immutable list of foci.
// An empty group means "no constraint" and is not the same as a group holding a wildcard focus.
type FocusGroup struct {
	focuses []Focus
}

// NewFocusGroup creates a group holding focuses in the given order.
func NewFocusGroup(focuses ...Focus) FocusGroup {
	return FocusGroup{focuses: slices.Clone(focuses)}
}

// EmptyFocusGroup returns the group with no foci.
func EmptyFocusGroup() FocusGroup {
	return FocusGroup{}
}

// IsEmpty reports whether the group holds no foci.
func (g FocusGroup) IsEmpty() bool {
	return len(g.focuses) == 0
}

// Len returns the number of foci.
func (g FocusGroup) Len() int {
	return len(g.focuses)
}

// All yields the foci in order.
func (g FocusGroup) All() iter.Seq[Focus] {
	return slices.Values(g.focuses)
}

// Focuses returns a copy of the foci.
func (g FocusGroup) Focuses() []Focus {
	return slices.Clone(g.focuses)
}

// ByRole returns the foci with the given role, in order.
func (g FocusGroup) ByRole(role FocusRole) []Focus {
	var out []Focus
	for _, f := range g.focuses {
		if f.Role == role {
			out = append(out, f)
		}
	}
	return out
}
