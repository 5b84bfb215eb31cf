// Package registry provides the central "glue" for the block system.
//
// The Registry is responsible for storing mappings between the block
// type names used in flow files (e.g., "vector_source") and the actual
// compiled Go constructors and parameter structs that implement them.
//
// During application startup, block modules register themselves; the
// graph builder then resolves every block definition through the
// registry, so an unknown block type is caught before anything runs.
package registry
