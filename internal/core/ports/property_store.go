package ports

// PropertyStore is process-wide mutable property storage. Resolved user
// properties are published here at invocation start and are not reset
// automatically; anything that needs isolation (tests, repeated invocations
// within one process) must Snapshot before and Restore after a run.
type PropertyStore interface {
	// Set publishes a property for the remainder of the process.
	Set(key, value string)

	// Get returns the published value for key and whether it was present.
	Get(key string) (string, bool)

	// Snapshot returns a copy of the full store contents.
	Snapshot() map[string]string

	// Restore replaces the store contents with the given snapshot.
	Restore(props map[string]string)
}
