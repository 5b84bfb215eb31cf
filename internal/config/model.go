package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of the entire
// application configuration: every flow defined across all loaded
// files.
type Model struct {
	Flows []*Flow
}

// Flow represents one named flowgraph definition.
type Flow struct {
	Name        string
	Blocks      []*BlockDef
	Connections []*Connection
}

// BlockDef is the format-agnostic representation of a `block` block: a
// runnable instance of a registered block type. Argument values stay
// as unevaluated expressions until the graph builder decodes them
// against the block type's parameter struct.
type BlockDef struct {
	TypeName  string
	Name      string
	Arguments map[string]hcl.Expression
}

// Connection is the format-agnostic representation of a `connect`
// block. From and To hold raw endpoint strings, e.g. "src:out"; the
// graph builder parses and wires them.
type Connection struct {
	From string
	To   string
}
