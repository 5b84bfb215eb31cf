/*
Package endpoint provides a structured, type-safe representation for
connection endpoints within a flowgraph, based on the canonical format
`block:port`.

The port may be omitted, e.g. `src`, in which case callers supply a
role-appropriate default: DefaultOutput for the upstream end of a
connection and DefaultInput for the downstream end.

This package enforces the endpoint schema and centralizes all
formatting and parsing logic.
*/
package endpoint
