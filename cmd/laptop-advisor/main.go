// Laptop-advisor recommends laptop configurations for a chosen manufacturer,
// model and intended use.
//
// It talks to a recommendation service over HTTP/JSON. Running without
// arguments opens the interactive form; the subcommands perform the same
// queries non-interactively for scripting.
//
// Usage:
//
//	laptop-advisor [command] [flags]
//
// See 'laptop-advisor --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/laptop-advisor/internal/logging"
	"github.com/muurk/laptop-advisor/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "laptop-advisor",
	Short: "Laptop recommendation client",
	Long: `Pick a manufacturer, a model and what you will use the laptop for,
and get recommended configurations from the recommendation service.

If no command is specified, the interactive form launches automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runForm,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat == formatJSON {
			return printJSON(cmd.OutOrStdout(), version.Get())
		}
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "laptop-advisor %s %s %s\n",
			version.Full(), info.GoVersion, info.Platform)
		return nil
	},
}
