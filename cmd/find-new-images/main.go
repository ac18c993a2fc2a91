// Package main lists images in a new dump that have no perceptual duplicate
// among the existing sprites.
//
// Usage errors print the synopsis and the error to stderr and exit with
// status 2. A failed comparison exits with status 1.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pokesprite/pokesprite/internal/platform/config"
	"github.com/pokesprite/pokesprite/internal/services/findnew"

	findnewcmd "github.com/pokesprite/pokesprite/internal/cmd/findnew"
)

func main() {
	cfg, err := findnewcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if errors.Is(err, findnew.ErrUsage) {
		config.ExitUsagef(findnewcmd.Usage, "find-new-images: error: %v", err)
	}
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix("[FIND-NEW] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := findnewcmd.Run(ctx, cfg, os.Stdout); err != nil {
		if errors.Is(err, findnewcmd.ErrReported) {
			os.Exit(config.ExitFatal)
		}
		config.Exitf("Error: %v", err)
	}
}
