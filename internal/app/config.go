package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// FlowPath points at a single .hcl file or a directory of them.
	FlowPath string

	// Bench selects the built-in copy-chain benchmark instead of
	// loading flow files.
	Bench   bool
	Copies  int
	Samples int
	Seed    uint64
	Repeat  int
	Verify  bool

	// BufferItems is the per-connection stream buffer size in items;
	// zero picks the engine default.
	BufferItems int

	LogFormat string
	LogLevel  string
	HTTPPort  int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if !cfg.Bench && cfg.FlowPath == "" {
		return nil, errors.New("either a flow path or -bench is required")
	}
	return &cfg, nil
}
