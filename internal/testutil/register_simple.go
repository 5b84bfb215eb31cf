package testutil

import "github.com/specialistvlad/flowgridgo/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single block type.
type SimpleModule struct {
	TypeName string
	Block    *registry.RegisteredBlock
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.TypeName != "" && m.Block != nil {
		r.RegisterBlock(m.TypeName, m.Block)
	}
}
