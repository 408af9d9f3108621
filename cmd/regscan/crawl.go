package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/regwatch/regscan/internal/config"
	"github.com/regwatch/regscan/internal/export"
	"github.com/regwatch/regscan/internal/fetch"
	applog "github.com/regwatch/regscan/internal/log"
	"github.com/regwatch/regscan/internal/model"
	"github.com/regwatch/regscan/internal/scrape"
	"github.com/regwatch/regscan/internal/store"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl the news listing and export extracted records",
		Long: `Crawl walks the paginated news listing, fetches every linked release
concurrently, and extracts structured fields from each page:

- release date (normalized to YYYY-MM-DD)
- release number
- topic tags
- general and media enquiry contacts
- penalty amounts mentioned in the body text

The extracted table is written as CSV by default. Pass "-" as the
output path to write to stdout.

Examples:
  # Crawl the full listing into the default CSV file
  regscan crawl

  # Limit the crawl and print JSON to stdout
  regscan crawl --max-pages 3 --format json -o -

  # Use session cookies from a config file
  regscan crawl -c .regscan

Configuration file (.regscan) example:
  cookies:
    session_id: "abc123"
  headers:
    Referer: "https://www.accc.gov.au/"
  pageSize: 50`,
		Args: cobra.NoArgs,
		RunE: runCrawlCmd,
	}

	cmd.Flags().StringP("base-url", "u", config.DefaultBaseURL,
		"Site origin to crawl")
	cmd.Flags().IntP("page-size", "s", config.DefaultPageSize,
		"Listing items requested per page")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of concurrent article fetches")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum listing pages to fetch (0 means until pagination ends)")
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Output file path, or - for stdout")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Output format: csv, json, or markdown")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .regscan in current or home directory)")
	cmd.Flags().Bool("no-archive", false,
		"Skip saving the run to the local archive")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := applog.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Context with signal handling for graceful shutdown. Cancelling
	// ends the run early but keeps the records gathered so far.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, finishing with partial results...")
		cancel()
	}()

	return runCrawl(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the
// optional session config file. Flag values win over file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.BaseURL, err = cmd.Flags().GetString("base-url")
	if err != nil {
		return nil, err
	}

	cfg.PageSize, err = cmd.Flags().GetInt("page-size")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Workers, err = cmd.Flags().GetInt("workers")
	if err != nil {
		return nil, err
	}

	cfg.MaxPages, err = cmd.Flags().GetInt("max-pages")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Format, err = cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	noArchive, err := cmd.Flags().GetBool("no-archive")
	if err != nil {
		return nil, err
	}
	cfg.Archive = !noArchive

	cfg.Verbose = getVerboseFlag(cmd)

	// Load session settings from the config file. An explicitly given
	// path that does not exist is an error; a missing default file is not.
	pageSizeChanged := cmd.Flags().Changed("page-size")
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
		// A flag given on the command line beats the file value.
		if pageSizeChanged {
			cfg.PageSize, _ = cmd.Flags().GetInt("page-size")
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runCrawl executes the crawl and writes the results.
func runCrawl(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting crawl",
		"baseURL", cfg.BaseURL,
		"pageSize", cfg.PageSize,
		"workers", cfg.Workers,
		"maxPages", cfg.MaxPages,
		"archive", cfg.Archive,
	)

	client := fetch.NewClient(cfg.Timeout,
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithAccept(config.DefaultAccept),
		fetch.WithCookies(cfg.Cookies),
		fetch.WithHeaders(cfg.Headers),
		fetch.WithRetry(cfg.RetryMax, cfg.RetryWait, config.RetryStatuses),
		fetch.WithLogger(logger),
	)

	processor := scrape.NewProcessor(client, logger)
	dispatcher := scrape.NewDispatcher(processor,
		scrape.WithConcurrency(cfg.Workers),
		scrape.WithDispatcherLogger(logger),
	)

	walker, err := scrape.NewWalker(cfg.BaseURL, client, dispatcher,
		scrape.WithListingPath(cfg.ListingPath),
		scrape.WithPageSize(cfg.PageSize),
		scrape.WithMaxPages(cfg.MaxPages),
		scrape.WithWalkerLogger(logger),
	)
	if err != nil {
		return err
	}

	result := walker.Run(ctx)

	logger.Info("crawl finished",
		"records", len(result.Records),
		"pages", result.PagesFetched,
		"failed", result.ArticlesFailed,
		"elapsed", result.Elapsed,
	)

	if err := writeRecords(cfg, result); err != nil {
		return err
	}

	if cfg.Archive {
		archive, err := store.Open(cfg.DBDir, store.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer archive.Close()

		// A cancelled run still archives its partial results, so the
		// save must not inherit the crawl's cancellation.
		runID, err := archive.SaveRun(context.WithoutCancel(ctx), result)
		if err != nil {
			return fmt.Errorf("failed to archive run: %w", err)
		}
		logger.Info("run archived", "runID", runID, "db", archive.Path())
	}

	return nil
}

// writeRecords writes the extracted records to the configured output.
func writeRecords(cfg *config.Config, result *model.CrawlResult) error {
	var out io.Writer
	if cfg.OutputFile == "-" {
		out = os.Stdout
	} else {
		if dir := filepath.Dir(cfg.OutputFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(cfg.OutputFile) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writer, err := export.ForFormat(cfg.Format, out)
	if err != nil {
		return err
	}
	if err := writer.Write(result.Records); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
