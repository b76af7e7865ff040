// Package lookup aggregates recipe lookups across independently written plugins.
//
// A PluginManager fans each query out to every registered plugin, concatenates the
// answers lazily in registration order and removes duplicates. Each plugin call runs
// through a Guard: a call that panics or returns an error disables that plugin for the
// rest of the process, and a call slower than the configured threshold is logged.
package lookup
