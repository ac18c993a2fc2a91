// Package main writes the icon overview pages for a sprite build.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pokesprite/pokesprite/internal/platform/config"

	overviewcmd "github.com/pokesprite/pokesprite/internal/cmd/overview"
)

func main() {
	cfg, err := overviewcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix("[OVERVIEW] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := overviewcmd.Run(ctx, cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}
