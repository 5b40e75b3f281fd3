package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvdist/internal/cli"
)

// Set via -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
