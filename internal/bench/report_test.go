package bench

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDuration(t *testing.T) {
	testCases := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "sub-second", seconds: 0.123456789, want: "   0.123456789000000\n"},
		{name: "seconds", seconds: 1.5, want: "   1.500000000000000\n"},
		{name: "minutes", seconds: 83.25, want: "  83.250000000000000\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeDuration(&buf, tc.seconds))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, []float64{3, 1, 2}))

	out := buf.String()
	assert.Contains(t, out, "runs=3")
	assert.Contains(t, out, "mean=2.000000s")
	assert.Contains(t, out, "median=2.000000s")
	assert.Contains(t, out, "stddev=1.000000s")
	assert.Contains(t, out, "min=1.000000s")
	assert.Contains(t, out, "max=3.000000s")
}
