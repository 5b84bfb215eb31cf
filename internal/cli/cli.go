package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/flowgridgo/internal/app"
	"github.com/specialistvlad/flowgridgo/internal/bench"
	"github.com/specialistvlad/flowgridgo/internal/sample"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("flowgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
FlowGridGo - a block-based streaming dataflow engine.

Usage:
  flowgridgo [options] [FLOW_PATH]

Arguments:
  FLOW_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	benchFlag := flagSet.Bool("bench", false, "Run the built-in copy-chain benchmark instead of a flow file.")
	copiesFlag := flagSet.Int("copies", bench.DefaultCopies, "Number of copy stages for the benchmark chain.")
	samplesFlag := flagSet.Int("samples", bench.DefaultSamples, "Number of random samples pushed through the benchmark chain.")
	seedFlag := flagSet.Uint64("seed", sample.DefaultSeed, "Seed for the benchmark sample generator.")
	repeatFlag := flagSet.Int("repeat", 1, "Run the benchmark this many times; a summary is printed when above 1.")
	verifyFlag := flagSet.Bool("verify", false, "Verify that the benchmark sink received exactly the source samples.")
	bufferFlag := flagSet.Int("buffer", 0, "Stream buffer size per connection, in items. 0 selects the engine default.")
	httpPortFlag := flagSet.Int("http-port", 0, "Port for the HTTP health/metrics server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("unexpected extra arguments: %s", strings.Join(flagSet.Args()[1:], " ")),
		}
	}
	slog.Debug("Flow path determined.", "path", path)

	if *benchFlag && path != "" {
		slog.Warn("FLOW_PATH is ignored when -bench is set.", "path", path)
		path = ""
	}

	if !*benchFlag && path == "" {
		slog.Debug("No flow path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *copiesFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid copies: must be at least 1"}
	}
	if *samplesFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid samples: must be at least 1"}
	}
	if *repeatFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid repeat: must be at least 1"}
	}
	if *bufferFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid buffer: must not be negative"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		FlowPath:    path,
		Bench:       *benchFlag,
		Copies:      *copiesFlag,
		Samples:     *samplesFlag,
		Seed:        *seedFlag,
		Repeat:      *repeatFlag,
		Verify:      *verifyFlag,
		BufferItems: *bufferFlag,
		HTTPPort:    *httpPortFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
