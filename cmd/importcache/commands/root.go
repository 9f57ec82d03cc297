// Package commands implements the CLI commands for importcache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/importcache/internal/app"
	"go.trai.ch/importcache/internal/build"
)

// DefaultManifest is the runtime manifest read when --manifest is not given.
const DefaultManifest = "runtime.yaml"

// CLI represents the command line interface for importcache.
type CLI struct {
	app     Application
	logs    LogConfigurer
	rootCmd *cobra.Command

	session app.SessionOptions
	json    bool
	verbose bool
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, paths []string, opts app.SessionOptions) ([]app.Resolution, error)
	Inspect(ctx context.Context, w io.Writer, opts app.SessionOptions) error
	Modules(w io.Writer, opts app.SessionOptions) error
}

// LogConfigurer is implemented by loggers that accept the global log flags.
type LogConfigurer interface {
	SetJSON(enabled bool)
	SetVerbose(enabled bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogConfigurer routes --json and --verbose to l.
func WithLogConfigurer(l LogConfigurer) Option {
	return func(c *CLI) {
		c.logs = l
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "importcache",
		Short:         "Resolve and inspect declared modules of an embedded runtime",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.session.ManifestPath, "manifest", "m", DefaultManifest, "Runtime manifest to resolve against")
	flags.StringVarP(&c.session.ConfigPath, "config", "c", "", "Declaration overlay (default importcache.yaml)")
	flags.BoolVar(&c.session.EagerAll, "eager-all", false, "Resolve every module during initialization")
	flags.IntVar(&c.session.PreloadConcurrency, "concurrency", 0, "Modules resolved at once during initialization")
	flags.BoolVar(&c.json, "json", false, "Write logs as JSON")
	flags.BoolVar(&c.verbose, "verbose", false, "Enable debug logs")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.logs != nil {
			c.logs.SetJSON(c.json)
			c.logs.SetVerbose(c.verbose)
		}
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newModulesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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
