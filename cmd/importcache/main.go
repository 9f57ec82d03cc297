// Package main is the entry point for the importcache tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/importcache/cmd/importcache/commands"
	"go.trai.ch/importcache/internal/app"
	"go.trai.ch/importcache/internal/core/domain"
	_ "go.trai.ch/importcache/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Telemetry.Shutdown(context.Background()) }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	if cleanup != nil {
		defer cleanup()
	}

	// 2. Interface - CLI
	var opts []commands.Option
	if lc, ok := components.Logger.(commands.LogConfigurer); ok {
		opts = append(opts, commands.WithLogConfigurer(lc))
	}
	cli := commands.New(components.App, opts...)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrResolutionFailed) {
			// Each failure has already been printed next to its path.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
