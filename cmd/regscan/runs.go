package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/regwatch/regscan/internal/config"
	"github.com/regwatch/regscan/internal/export"
	"github.com/regwatch/regscan/internal/store"
)

// NewRunsCmd creates the runs command.
func NewRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List archived crawl runs or re-export one",
		Long: `Runs lists the crawl runs saved in the local archive. With --export,
the records of one archived run are written again without crawling.

Examples:
  # List archived runs
  regscan runs

  # Re-export run 3 as JSON to stdout
  regscan runs --export 3 --format json -o -`,
		Args: cobra.NoArgs,
		RunE: runRunsCmd,
	}

	cmd.Flags().Int64("export", 0,
		"Re-export the records of the given run ID")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Output format for --export: csv, json, or markdown")
	cmd.Flags().StringP("output", "o", "-",
		"Output file path for --export, or - for stdout")
	cmd.Flags().String("db-dir", "",
		"Archive directory (default: XDG data directory)")

	return cmd
}

// runRunsCmd executes the runs command.
func runRunsCmd(cmd *cobra.Command, _ []string) error {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	// Listing an empty archive should not create one.
	archive, err := store.Open(dbDir, store.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no archived runs")
		return nil //nolint:nilerr // A missing archive just means nothing was saved yet
	}
	defer archive.Close()

	runID, err := cmd.Flags().GetInt64("export")
	if err != nil {
		return err
	}
	if runID > 0 {
		return exportRun(cmd, archive, runID)
	}

	return listRuns(cmd.OutOrStdout(), archive, cmd)
}

// listRuns prints a table of archived runs.
func listRuns(out io.Writer, archive *store.Archive, cmd *cobra.Command) error {
	runs, err := archive.Runs(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "no archived runs")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tELAPSED\tPAGES\tRECORDS\tFAILED")
	for _, run := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Elapsed.Round(100*time.Millisecond),
			run.PagesFetched,
			run.RecordCount,
			run.ArticlesFailed,
		)
	}
	return tw.Flush()
}

// exportRun writes the records of one archived run.
func exportRun(cmd *cobra.Command, archive *store.Archive, runID int64) error {
	records, err := archive.RecordsForRun(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("failed to load run %d: %w", runID, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("run %d has no records", runID)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	var out io.Writer
	if outputPath == "-" {
		out = cmd.OutOrStdout()
	} else {
		if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(outputPath) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writer, err := export.ForFormat(format, out)
	if err != nil {
		return err
	}
	return writer.Write(records)
}
