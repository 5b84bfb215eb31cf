package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, translates it
	// into the format-agnostic model, and returns a matching
	// Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific data binding
// implementation. It acts as the bridge between raw block arguments
// and the Go parameter structs used by block modules.
type Converter interface {
	// DecodeParams decodes a block definition's arguments into a
	// target Go struct, guided by the struct's field tags.
	DecodeParams(
		ctx context.Context,
		target any,
		args map[string]hcl.Expression,
		evalCtx *hcl.EvalContext,
	) error
}
