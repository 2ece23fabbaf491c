// Package commands implements the CLI commands for carve.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/carve/internal/app"
	"go.trai.ch/carve/internal/build"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
)

// CLI represents the command line interface for carve.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Extract(ctx context.Context, opts app.ExtractOptions) error
	Plan(ctx context.Context, opts app.PlanOptions) (*domain.Closure, error)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "carve",
		Short:         "Extract a local package closure into a standalone Cargo workspace",
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

	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logs")
	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Settings file")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.logger.SetJSON(jsonMode)
		c.logger.SetVerbose(verbose)
	}

	rootCmd.AddCommand(c.newExtractCmd())
	rootCmd.AddCommand(c.newPlanCmd())
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

// addPlanFlags registers the flags shared by extract and plan.
func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().String("root", "", "Source tree to extract from (default \""+domain.DefaultRootDir+"\")")
	cmd.Flags().String("metadata", "", "Read package metadata from this file instead of running cargo")
}

// planOptions reads the shared flags of cmd.
func planOptions(cmd *cobra.Command, packages []string) app.PlanOptions {
	configPath, _ := cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("root")
	metadata, _ := cmd.Flags().GetString("metadata")

	return app.PlanOptions{
		ConfigOptions: app.ConfigOptions{
			ConfigPath:     configPath,
			ConfigRequired: cmd.Flags().Changed("config"),
		},
		Packages: packages,
		Root:     root,
		Metadata: metadata,
	}
}
