// Package ingredients holds the canonical set of lookup-able values for each ingredient type.
//
// Every value is keyed by the uid its Helper computes, not by Go equality: adding a value
// whose uid is already stored replaces the stored value in place, and removing a value
// removes whatever is stored under its uid. Readers get live views that observe later
// additions and removals.
package ingredients
