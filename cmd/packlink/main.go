// Package main is the entry point for packlink.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlink/cmd/packlink/commands"
	"go.trai.ch/packlink/internal/app"
	_ "go.trai.ch/packlink/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	if components.Telemetry != nil {
		defer func() {
			if err := components.Telemetry.Close(); err != nil {
				components.Logger.Error(err)
			}
		}()
	}

	cli := commands.New(components.App)
	if f, ok := components.Logger.(commands.LogFormatter); ok {
		cli.WithLogFormatter(f)
	}
	if e, ok := components.Telemetry.(commands.TraceExporter); ok {
		cli.WithTraceExporter(e)
	}
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
