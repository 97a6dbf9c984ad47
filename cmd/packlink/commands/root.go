// Package commands implements the CLI commands for packlink.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/packlink/internal/app"
	"go.trai.ch/packlink/internal/build"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for packlink.
type CLI struct {
	app     Application
	logs    LogFormatter
	traces  TraceExporter
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (*domain.Links, error)
	Status(ctx context.Context) ([]domain.LinkRecord, error)
}

// LogFormatter switches the log output format.
type LogFormatter interface {
	SetJSON(enable bool)
}

// TraceExporter writes finished spans to a writer.
type TraceExporter interface {
	ExportTo(w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "packlink",
		Short:         "Install local packages into local projects as if they were published",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().String("trace", "", "Write OpenTelemetry spans as JSON to `file`")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.setupOutput

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) setupOutput(cmd *cobra.Command, _ []string) error {
	if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs && c.logs != nil {
		c.logs.SetJSON(true)
	}

	path, _ := cmd.Flags().GetString("trace")
	if path == "" || c.traces == nil {
		return nil
	}

	f, err := os.Create(path) //nolint:gosec // path comes from the user
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create trace file"), "path", path)
	}
	if err := c.traces.ExportTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return nil
}

// WithTraceExporter lets the --trace flag export spans through e.
func (c *CLI) WithTraceExporter(e TraceExporter) *CLI {
	c.traces = e
	return c
}

// WithLogFormatter lets the --json flag switch the log format of f.
func (c *CLI) WithLogFormatter(f LogFormatter) *CLI {
	c.logs = f
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
