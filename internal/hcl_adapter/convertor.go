package hcl_adapter

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/flowgridgo/internal/ctxlog"
)

// Converter is the HCL-specific implementation of the config.Converter
// interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeParams populates a block parameter struct from raw HCL
// argument expressions. Fields are matched by their `flow` tag. A
// field tagged with ",optional" keeps its current value when the
// argument is absent; every other tagged field is required. Arguments
// that match no field are rejected.
func (c *Converter) DecodeParams(
	ctx context.Context,
	target any,
	args map[string]hcl.Expression,
	evalCtx *hcl.EvalContext,
) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting params decoding.")

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}
	structVal = structVal.Elem()
	if structVal.Kind() != reflect.Struct {
		return fmt.Errorf("target must point to a struct")
	}
	structType := structVal.Type()

	known := make(map[string]bool)

	for i := 0; i < structType.NumField(); i++ {
		fieldDef := structType.Field(i)
		fieldVal := structVal.Field(i)

		if !fieldDef.IsExported() || !fieldVal.CanSet() {
			continue
		}

		parts := strings.Split(fieldDef.Tag.Get("flow"), ",")
		tagName := parts[0]
		if tagName == "" || tagName == "-" {
			continue
		}
		known[tagName] = true
		optional := len(parts) > 1 && parts[1] == "optional"

		argExpr, provided := args[tagName]
		if !provided {
			if optional {
				continue
			}
			return fmt.Errorf("missing required argument %q", tagName)
		}

		val, diags := argExpr.Value(evalCtx)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate argument %q: %w", tagName, diags)
		}

		wantType, err := gocty.ImpliedType(fieldVal.Interface())
		if err != nil {
			return fmt.Errorf("argument %q: unsupported Go field type %s: %w", tagName, fieldDef.Type, err)
		}
		converted, err := convert.Convert(val, wantType)
		if err != nil {
			return fmt.Errorf("argument %q: %w", tagName, err)
		}
		if err := gocty.FromCtyValue(converted, fieldVal.Addr().Interface()); err != nil {
			return fmt.Errorf("argument %q: %w", tagName, err)
		}
	}

	var unknown []string
	for name := range args {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unsupported argument(s): %s", strings.Join(unknown, ", "))
	}

	logger.Debug("Finished params decoding successfully.")
	return nil
}
