package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/specialistvlad/flowgridgo/internal/config"
	"github.com/specialistvlad/flowgridgo/internal/schema"
)

// translateFlow converts the HCL-specific flow schema into the
// agnostic model.
func (l *Loader) translateFlow(f *schema.Flow) *config.Flow {
	out := &config.Flow{Name: f.Name}
	for _, b := range f.Blocks {
		out.Blocks = append(out.Blocks, l.translateBlock(b))
	}
	for _, c := range f.Connections {
		out.Connections = append(out.Connections, &config.Connection{
			From: c.From,
			To:   c.To,
		})
	}
	return out
}

// translateBlock converts the HCL-specific block schema into the
// agnostic model.
func (l *Loader) translateBlock(b *schema.Block) *config.BlockDef {
	return &config.BlockDef{
		TypeName:  b.TypeName,
		Name:      b.Name,
		Arguments: l.extractBodyAttributes(b.Arguments),
	}
}

// extractBodyAttributes converts an arguments block body into a map of
// raw expressions.
func (l *Loader) extractBodyAttributes(args *schema.BlockArgs) map[string]hcl.Expression {
	if args == nil || args.Body == nil {
		return nil
	}
	attrs, _ := args.Body.JustAttributes()
	if len(attrs) == 0 {
		return nil
	}
	exprMap := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		exprMap[name] = attr.Expr
	}
	return exprMap
}
