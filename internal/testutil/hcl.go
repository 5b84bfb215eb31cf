package testutil

import (
	"testing"

	"github.com/specialistvlad/flowgridgo/internal/config"
)

// RunFlowHCLTest provides a simplified harness for running a single flow HCL
// string through the full load, build, and run path with the built-in block
// modules.
func RunFlowHCLTest(t *testing.T, flowHCL string) (*HarnessResult, []*config.Flow) {
	t.Helper()

	files := map[string]string{
		"flows/main.hcl": flowHCL,
	}

	result := RunFlowTest(t, files)

	if result.App != nil && result.App.Model() != nil {
		return result, result.App.Model().Flows
	}
	return result, nil
}
