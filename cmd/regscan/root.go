// Package main provides the entry point for the regscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for regscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regscan",
		Short: "Extract structured records from a regulator's news listing",
		Long: `regscan walks the paginated news listing of the ACCC website, fetches
every linked release, and extracts structured fields: release date,
release number, topic tags, contact details, and penalty amounts
mentioned in the body text.

Results are exported as CSV by default and archived locally so past
runs can be listed and re-exported without crawling again.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewRunsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
