package config

import (
	"fmt"
	"io"
	"os"
)

// Exit codes used by the command entry points.
const (
	ExitFatal = 1
	ExitUsage = 2
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitFatal)
}

// ExitUsagef prints usage followed by a formatted error and exits with code 2.
// No further work is done after a usage error.
func ExitUsagef(usage func(io.Writer), format string, args ...any) {
	if usage != nil {
		usage(os.Stderr)
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitUsage)
}
