package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/regwatch/regscan/internal/model"
)

// Archive provides SQLite-based storage for completed crawl runs.
//
// Design decision: all runs share a single database file rather than
// one file per run. This keeps the run listing a single query and makes
// backup a single-file copy.
type Archive struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Archive behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default archive options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an Archive at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*Archive, error) {
	dbPath := filepath.Join(dbDir, "regscan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("archive not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check archive path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	a := &Archive{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := a.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Path returns the path to the underlying SQLite file.
func (a *Archive) Path() string {
	return a.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (a *Archive) createTables() error {
	schema := `
	-- Runs store one row per completed crawl
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at DATETIME NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		pages_fetched INTEGER NOT NULL,
		articles_failed INTEGER NOT NULL,
		record_count INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

	-- Records store the extracted rows of each run in listing order
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		topics TEXT NOT NULL,
		release_date TEXT NOT NULL,
		release_number TEXT NOT NULL,
		url TEXT NOT NULL,
		heading TEXT NOT NULL,
		summary TEXT NOT NULL,
		penalty_amounts TEXT NOT NULL,
		general_enquiries TEXT NOT NULL,
		media_contact_number TEXT NOT NULL,
		media_email TEXT NOT NULL,
		body_text TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id);
	`

	_, err := a.db.ExecContext(context.Background(), schema)
	return err
}

// RunSummary describes one archived crawl run.
type RunSummary struct {
	ID             int64
	StartedAt      time.Time
	Elapsed        time.Duration
	PagesFetched   int
	ArticlesFailed int
	RecordCount    int
}

// SaveRun stores a completed crawl result and returns the new run ID.
// The run row and all record rows are written in a single transaction.
func (a *Archive) SaveRun(ctx context.Context, result *model.CrawlResult) (int64, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, elapsed_ms, pages_fetched, articles_failed, record_count)
		 VALUES (?, ?, ?, ?, ?)`,
		result.StartedAt.UTC().Format(time.RFC3339),
		result.Elapsed.Milliseconds(),
		result.PagesFetched,
		result.ArticlesFailed,
		len(result.Records),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (run_id, position, topics, release_date, release_number, url, heading,
		                      summary, penalty_amounts, general_enquiries, media_contact_number,
		                      media_email, body_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, rec := range result.Records {
		if _, err := stmt.ExecContext(ctx, runID, i,
			rec.Topics, rec.ReleaseDate, rec.ReleaseNumber, rec.URL, rec.Heading,
			rec.Summary, rec.PenaltyAmounts, rec.GeneralEnquiries, rec.MediaContactNumber,
			rec.MediaEmail, rec.BodyText,
		); err != nil {
			return 0, fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// Runs lists archived runs, most recent first.
func (a *Archive) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, started_at, elapsed_ms, pages_fetched, articles_failed, record_count
		 FROM runs ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []RunSummary
	for rows.Next() {
		var (
			run       RunSummary
			startedAt string
			elapsedMS int64
		)
		if err := rows.Scan(&run.ID, &startedAt, &elapsedMS, &run.PagesFetched, &run.ArticlesFailed, &run.RecordCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.StartedAt = parseTimestamp(startedAt)
		run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// RecordsForRun returns the records of one run in listing order.
// It returns an empty slice when the run has no records or does not exist.
func (a *Archive) RecordsForRun(ctx context.Context, runID int64) ([]*model.ArticleRecord, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT topics, release_date, release_number, url, heading, summary, penalty_amounts,
		        general_enquiries, media_contact_number, media_email, body_text
		 FROM records WHERE run_id = ? ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*model.ArticleRecord
	for rows.Next() {
		var rec model.ArticleRecord
		if err := rows.Scan(
			&rec.Topics, &rec.ReleaseDate, &rec.ReleaseNumber, &rec.URL, &rec.Heading,
			&rec.Summary, &rec.PenaltyAmounts, &rec.GeneralEnquiries, &rec.MediaContactNumber,
			&rec.MediaEmail, &rec.BodyText,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

// timestampFormats lists the formats SQLite may hand back depending on
// how the value was written.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
