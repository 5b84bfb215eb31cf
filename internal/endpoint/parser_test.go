package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Endpoint
	}{
		{
			name:     "block and port",
			raw:      "src:out",
			expected: New("src", "out"),
		},
		{
			name:     "block only",
			raw:      "src",
			expected: Endpoint{Block: "src"},
		},
		{
			name:     "names with underscores and digits",
			raw:      "copy_7:in",
			expected: New("copy_7", "in"),
		},
		{
			name:     "names with hyphens",
			raw:      "vector-sink:in",
			expected: New("vector-sink", "in"),
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - missing block",
			raw:       ":out",
			expectErr: true,
		},
		{
			name:      "error - explicit empty port",
			raw:       "src:",
			expectErr: true,
		},
		{
			name:      "error - too many separators",
			raw:       "src:out:extra",
			expectErr: true,
		},
		{
			name:      "error - block starts with digit",
			raw:       "7src:out",
			expectErr: true,
		},
		{
			name:      "error - whitespace in name",
			raw:       "my src:out",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ep, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, ep)
		})
	}
}
