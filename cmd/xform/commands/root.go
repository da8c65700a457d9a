// Package commands implements the CLI commands for xform.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xform/internal/app"
	"go.trai.ch/xform/internal/build"
	"go.trai.ch/xform/internal/core/ports"
)

// DefaultSceneFile is the scene file read when --file is not given.
const DefaultSceneFile = "scene.yaml"

// CLI represents the command line interface for xform.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, path string, names []string, opts app.ResolveOptions) ([]app.Result, error)
	Watch(ctx context.Context, path string, opts app.WatchOptions) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogger lets the --log-json flag switch the format of log.
// Loggers that cannot switch format ignore the flag.
func WithLogger(log ports.Logger) Option {
	return func(c *CLI) {
		c.logger = log
	}
}

type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "xform",
		Short:         "Resolve entity transform expressions into matrices",
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

	rootCmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logJSON, _ := cmd.Flags().GetBool("log-json")
		if s, ok := c.logger.(jsonSwitcher); ok {
			s.SetJSON(logJSON)
		}
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", DefaultSceneFile, "Path to the scene file")
	cmd.Flags().Bool("lenient", false, "Fall back to the identity matrix when a transform fails")
	cmd.Flags().Bool("trace", false, "Log every reload and dispatch round with its timing")
}
