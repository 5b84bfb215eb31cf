package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertFlowRan checks the log output within a HarnessResult to confirm that
// a specific flow has completed. It leans on the engine's lifecycle logs
// instead of internal state, making tests resilient to refactoring.
func AssertFlowRan(t *testing.T, result *HarnessResult, flowName string) {
	t.Helper()

	flowAttr := fmt.Sprintf("flow=%s", flowName)
	require.True(t,
		strings.Contains(result.LogOutput, flowAttr) &&
			strings.Contains(result.LogOutput, "Flow finished"),
		"expected completion log for flow %q was not found in logs", flowName,
	)
}
