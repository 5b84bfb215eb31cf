// Package schema declares the HCL shapes of user-facing flow files.
// These structs are decoded by gohcl and then translated into the
// format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// BlockArgs represents the content of the 'arguments' block within a
// block definition. The body is kept raw so argument expressions can
// be decoded later against the block type's parameter struct.
type BlockArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Block represents a `block` block from a user's flow file. It is a
// runnable instance of a registered block type.
type Block struct {
	TypeName  string     `hcl:"block_type,label"`
	Name      string     `hcl:"instance_name,label"`
	Arguments *BlockArgs `hcl:"arguments,block"`
}

// Connection represents a `connect` block wiring one output endpoint
// to one input endpoint.
type Connection struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// Flow represents a named `flow` block containing block instances and
// the connections between them.
type Flow struct {
	Name        string        `hcl:"name,label"`
	Blocks      []*Block      `hcl:"block,block"`
	Connections []*Connection `hcl:"connect,block"`
}

// FlowConfig represents the top-level structure of a user's flow file,
// containing all defined flows.
type FlowConfig struct {
	Flows []*Flow  `hcl:"flow,block"`
	Body  hcl.Body `hcl:",remain"`
}
