// Package commands implements the CLI commands for replica.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/replica/internal/adapters/detector"
	"go.trai.ch/replica/internal/app"
	"go.trai.ch/replica/internal/build"
	"go.trai.ch/replica/internal/core/ports"
)

// CLI represents the command line interface for replica.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Serve(ctx context.Context, root string, opts app.ServeOptions) error
	Publish(ctx context.Context, root string, opts app.PublishOptions) error
	Describe(ctx context.Context, root string, opts app.DescribeOptions) error
	Status(ctx context.Context, root string, asJSON bool) error
	Stop(ctx context.Context, root string) error
}

// logConfigurer is implemented by loggers whose output format can be switched.
type logConfigurer interface {
	SetJSON(enabled bool)
	SetVerbose(enabled bool)
}

// New creates a new CLI instance with the given app. When logger implements
// SetJSON and SetVerbose, the global logging flags are applied to it.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "replica",
		Short:         "Mirror a workspace into a long-lived worker by content checksum",
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

	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logs")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRun = c.configureLogging

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newDescribeCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newStopCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) {
	lc, ok := c.logger.(logConfigurer)
	if !ok {
		return
	}
	flag, _ := cmd.Flags().GetString("log-format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	format := detector.ResolveLogFormat(detector.DetectLogFormat(os.Stderr), flag)
	lc.SetJSON(format == detector.FormatJSON)
	lc.SetVerbose(verbose)
}

// rootArg returns the workspace directory named by args, or the current directory.
func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
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
