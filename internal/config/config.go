package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. Where a value mirrors the target site's
// published behavior (page size, retry statuses) the rationale is noted.
const (
	// DefaultBaseURL is the origin the listing path and every relative
	// article link are resolved against.
	DefaultBaseURL = "https://www.accc.gov.au"

	// DefaultListingPath is the news-centre listing endpoint. Page size
	// and page index are appended as query parameters.
	DefaultListingPath = "/news-centre"

	// DefaultPageSize of 100 is the largest page size the listing
	// endpoint honors. Fewer listing fetches means fewer chances for a
	// mid-run listing failure to truncate the crawl.
	DefaultPageSize = 100

	// DefaultTimeout applies uniformly to listing and article fetches.
	// The site is a fast clearnet service; 10 seconds is generous.
	DefaultTimeout = 10 * time.Second

	// DefaultWorkers is the number of concurrent in-flight article
	// fetches per listing page. 10 balances throughput against
	// politeness toward the target server.
	DefaultWorkers = 10

	// DefaultMaxPages of 0 means crawl until pagination is exhausted.
	DefaultMaxPages = 0

	// DefaultRetryMax is the number of attempts for a single fetch
	// before the transport reports a terminal error.
	DefaultRetryMax = 5

	// DefaultRetryWait is the base backoff duration; the wait doubles
	// after each retried attempt.
	DefaultRetryWait = 1 * time.Second

	// DefaultOutputFile is the export artifact written at run end.
	DefaultOutputFile = "regscan_news.csv"

	// DefaultFormat is the export format. See internal/export for the
	// supported set.
	DefaultFormat = "csv"

	// DefaultUserAgent presents as a desktop browser. The news centre
	// serves a degraded page to obvious bot agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36"

	// DefaultAccept is the Accept header sent with every request.
	DefaultAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7"

	// AppName is used for XDG directory paths.
	AppName = "regscan"
)

// RetryStatuses are the HTTP status codes treated as transient server
// errors worth retrying. All other non-2xx statuses fail immediately.
var RetryStatuses = []int{500, 502, 503, 504}

// Config holds all options for a crawl run.
//
// Design decision: A single flat struct, populated from flags and the
// optional config file, passed through via dependency injection rather
// than global state. The option count is small enough that nested
// sub-structs would add complexity without benefit.
type Config struct {
	// BaseURL is the site origin, e.g. "https://www.accc.gov.au".
	BaseURL string

	// ListingPath is the listing endpoint path under BaseURL.
	ListingPath string

	// PageSize is the items-per-page query value for listing fetches.
	PageSize int

	// Timeout is the per-request timeout for every fetch.
	Timeout time.Duration

	// Workers bounds concurrent article fetches within one listing page.
	Workers int

	// MaxPages caps the number of listing pages fetched. 0 means crawl
	// until the pagination marker disappears.
	MaxPages int

	// RetryMax is the bounded attempt count per fetch.
	RetryMax int

	// RetryWait is the base exponential backoff duration.
	RetryWait time.Duration

	// OutputFile is the path of the export artifact.
	OutputFile string

	// Format selects the export writer: "csv", "json", or "markdown".
	Format string

	// UserAgent is sent with every request.
	UserAgent string

	// Cookies are session cookies sent with every request, loaded from
	// the config file. Keys are cookie names.
	Cookies map[string]string

	// Headers are extra request headers, loaded from the config file.
	Headers map[string]string

	// ConfigFilePath is an explicit config file location. Empty means
	// search .regscan in the current directory, then the home directory.
	ConfigFilePath string

	// Verbose enables slog.LevelDebug output.
	Verbose bool

	// Archive controls whether the run is saved to the local SQLite
	// archive after export.
	Archive bool

	// DBDir is the directory holding the archive database.
	DBDir string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		ListingPath: DefaultListingPath,
		PageSize:    DefaultPageSize,
		Timeout:     DefaultTimeout,
		Workers:     DefaultWorkers,
		MaxPages:    DefaultMaxPages,
		RetryMax:    DefaultRetryMax,
		RetryWait:   DefaultRetryWait,
		OutputFile:  DefaultOutputFile,
		Format:      DefaultFormat,
		UserAgent:   DefaultUserAgent,
		Cookies:     make(map[string]string),
		Headers:     make(map[string]string),
		Archive:     true,
		DBDir:       XDGDataDir(),
	}
}

// Validate checks the configuration for invalid values.
// It returns one of the package sentinel errors so callers can use
// errors.Is for programmatic handling.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoBaseURL
	}
	if c.PageSize <= 0 {
		return ErrInvalidPageSize
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if c.MaxPages < 0 {
		return ErrInvalidMaxPages
	}
	if c.RetryMax <= 0 {
		return ErrInvalidRetryMax
	}
	switch c.Format {
	case "csv", "json", "markdown":
	default:
		return ErrInvalidFormat
	}
	return nil
}

// XDGDataDir returns the XDG data directory for the archive database.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
