// Package cli parses command-line arguments into the application's
// configuration. It validates user input and maps failures to
// process-level exit codes.
package cli
