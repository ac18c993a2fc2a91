package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/pokesprite/pokesprite/internal/platform/config"
	"github.com/pokesprite/pokesprite/internal/platform/otel"
	"github.com/pokesprite/pokesprite/internal/platform/timeouts"
)

// Tool names, used as the otel service name and in log lines.
const (
	ToolOverview = "overview"
	ToolFindNew  = "find-new-images"
)

// ParseConfig loads environment overrides into cfg. Commands call it before
// registering flags so that flag defaults show the env values.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for tool, calls run, and flushes spans
// within timeouts.TelemetryShutdown once run returns.
func RunWithTelemetry(ctx context.Context, tool string, run func(context.Context) error) error {
	tool = strings.TrimSpace(tool)
	switch {
	case tool == "":
		return errors.New("tool name is required")
	case run == nil:
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, tool)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryShutdown)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s otel shutdown: %v", tool, err)
		}
	}()
	return run(ctx)
}
