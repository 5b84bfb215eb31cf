package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("help flag exits cleanly with usage", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse([]string{"-h"}, &out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("no arguments prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse(nil, &out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "FLOW_PATH")
	})

	t.Run("flow path with defaults", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse([]string{"flows/main.hcl"}, &out)

		require.NoError(t, err)
		require.False(t, shouldExit)
		require.NotNil(t, cfg)
		assert.Equal(t, "flows/main.hcl", cfg.FlowPath)
		assert.False(t, cfg.Bench)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 0, cfg.HTTPPort)
	})

	t.Run("bench mode carries the classic workload defaults", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse([]string{"-bench"}, &out)

		require.NoError(t, err)
		require.False(t, shouldExit)
		require.NotNil(t, cfg)
		assert.True(t, cfg.Bench)
		assert.Equal(t, 200, cfg.Copies)
		assert.Equal(t, 20000000, cfg.Samples)
		assert.Equal(t, uint64(1), cfg.Seed)
		assert.Equal(t, 1, cfg.Repeat)
		assert.False(t, cfg.Verify)
		assert.Equal(t, 0, cfg.BufferItems)
	})

	t.Run("bench flags override defaults", func(t *testing.T) {
		var out bytes.Buffer
		args := []string{
			"-bench", "-copies", "10", "-samples", "4096", "-seed", "7",
			"-repeat", "5", "-verify", "-buffer", "1024",
			"-log-level", "DEBUG", "-log-format", "JSON", "-http-port", "8080",
		}
		cfg, shouldExit, err := Parse(args, &out)

		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, 10, cfg.Copies)
		assert.Equal(t, 4096, cfg.Samples)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.Equal(t, 5, cfg.Repeat)
		assert.True(t, cfg.Verify)
		assert.Equal(t, 1024, cfg.BufferItems)
		assert.Equal(t, "debug", cfg.LogLevel, "level is lowercased")
		assert.Equal(t, "json", cfg.LogFormat, "format is lowercased")
		assert.Equal(t, 8080, cfg.HTTPPort)
	})

	t.Run("bench drops a stray flow path", func(t *testing.T) {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse([]string{"-bench", "flows/main.hcl"}, &out)

		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.True(t, cfg.Bench)
		assert.Empty(t, cfg.FlowPath)
	})

	t.Run("invalid inputs exit with code 2", func(t *testing.T) {
		testCases := []struct {
			name string
			args []string
			want string
		}{
			{name: "unknown flag", args: []string{"-no-such-flag"}, want: "flag provided but not defined"},
			{name: "extra positional args", args: []string{"a.hcl", "b.hcl"}, want: "unexpected extra arguments"},
			{name: "bad log format", args: []string{"-log-format", "yaml", "a.hcl"}, want: "invalid log-format"},
			{name: "bad log level", args: []string{"-log-level", "verbose", "a.hcl"}, want: "invalid log-level"},
			{name: "zero copies", args: []string{"-bench", "-copies", "0"}, want: "invalid copies"},
			{name: "zero samples", args: []string{"-bench", "-samples", "0"}, want: "invalid samples"},
			{name: "zero repeat", args: []string{"-bench", "-repeat", "0"}, want: "invalid repeat"},
			{name: "negative buffer", args: []string{"-bench", "-buffer", "-1"}, want: "invalid buffer"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				var out bytes.Buffer
				cfg, shouldExit, err := Parse(tc.args, &out)

				require.Error(t, err)
				assert.False(t, shouldExit)
				assert.Nil(t, cfg)

				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.want)
			})
		}
	})
}
