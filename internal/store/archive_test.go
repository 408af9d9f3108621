package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/regwatch/regscan/internal/model"
)

// setupTestArchive creates a temporary archive for testing.
func setupTestArchive(t *testing.T) *Archive {
	t.Helper()

	a, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return a
}

func sampleResult() *model.CrawlResult {
	return &model.CrawlResult{
		Records: []*model.ArticleRecord{
			{
				Topics:             "Consumer protection",
				ReleaseDate:        "2024-03-12",
				ReleaseNumber:      "45/24",
				URL:                "https://www.accc.gov.au/media-release/example-one",
				Heading:            "Court imposes penalty",
				Summary:            "A penalty of $2.5 million was imposed.",
				PenaltyAmounts:     "$2.5 million",
				GeneralEnquiries:   "1300 302 502",
				MediaContactNumber: "1300 138 917",
				MediaEmail:         "media@accc.gov.au",
				BodyText:           "The Federal Court has ordered a penalty of $2.5 million.",
			},
			{
				Topics:             model.NotAvailable,
				ReleaseDate:        model.NotAvailable,
				ReleaseNumber:      model.NotAvailable,
				URL:                "https://www.accc.gov.au/media-release/example-two",
				Heading:            "Second release",
				Summary:            model.NotAvailable,
				PenaltyAmounts:     model.NotAvailable,
				GeneralEnquiries:   model.NotAvailable,
				MediaContactNumber: model.NotAvailable,
				MediaEmail:         model.NotAvailable,
				BodyText:           model.NotAvailable,
			},
		},
		PagesFetched:   3,
		ArticlesFailed: 1,
		StartedAt:      time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC),
		Elapsed:        42 * time.Second,
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		a, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open archive: %v", err)
		}
		defer a.Close()

		if _, err := os.Stat(filepath.Join(dbDir, "regscan.db")); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false, EnableWAL: true}
		if _, err := Open(filepath.Join(t.TempDir(), "missing"), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("reopens existing database", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()
		a, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to create archive: %v", err)
		}
		if _, err := a.SaveRun(context.Background(), sampleResult()); err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
		_ = a.Close()

		opts := Options{CreateIfNotExists: false, EnableWAL: true}
		a2, err := Open(dbDir, opts)
		if err != nil {
			t.Fatalf("failed to reopen archive: %v", err)
		}
		defer a2.Close()

		runs, err := a2.Runs(context.Background())
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(runs) != 1 {
			t.Errorf("expected 1 run after reopen, got %d", len(runs))
		}
	})
}

func TestArchiveSaveRun(t *testing.T) {
	t.Parallel()

	a := setupTestArchive(t)
	ctx := context.Background()

	runID, err := a.SaveRun(ctx, sampleResult())
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	if runID <= 0 {
		t.Errorf("expected positive run ID, got %d", runID)
	}

	runs, err := a.Runs(ctx)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	run := runs[0]
	if run.ID != runID {
		t.Errorf("expected run ID %d, got %d", runID, run.ID)
	}
	if run.PagesFetched != 3 {
		t.Errorf("expected 3 pages fetched, got %d", run.PagesFetched)
	}
	if run.ArticlesFailed != 1 {
		t.Errorf("expected 1 failed article, got %d", run.ArticlesFailed)
	}
	if run.RecordCount != 2 {
		t.Errorf("expected 2 records, got %d", run.RecordCount)
	}
	if run.Elapsed != 42*time.Second {
		t.Errorf("expected elapsed 42s, got %v", run.Elapsed)
	}
	want := time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC)
	if !run.StartedAt.Equal(want) {
		t.Errorf("expected started at %v, got %v", want, run.StartedAt)
	}
}

func TestArchiveRecordsForRun(t *testing.T) {
	t.Parallel()

	a := setupTestArchive(t)
	ctx := context.Background()

	result := sampleResult()
	runID, err := a.SaveRun(ctx, result)
	if err != nil {
		t.Fatalf("failed to save run: %v", err)
	}

	records, err := a.RecordsForRun(ctx, runID)
	if err != nil {
		t.Fatalf("failed to load records: %v", err)
	}
	if len(records) != len(result.Records) {
		t.Fatalf("expected %d records, got %d", len(result.Records), len(records))
	}
	for i, rec := range records {
		if *rec != *result.Records[i] {
			t.Errorf("record %d mismatch:\ngot  %+v\nwant %+v", i, *rec, *result.Records[i])
		}
	}

	t.Run("unknown run returns no records", func(t *testing.T) {
		records, err := a.RecordsForRun(ctx, runID+100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})
}

func TestArchiveRunOrdering(t *testing.T) {
	t.Parallel()

	a := setupTestArchive(t)
	ctx := context.Background()

	first, err := a.SaveRun(ctx, sampleResult())
	if err != nil {
		t.Fatalf("failed to save first run: %v", err)
	}
	second, err := a.SaveRun(ctx, sampleResult())
	if err != nil {
		t.Fatalf("failed to save second run: %v", err)
	}

	runs, err := a.Runs(ctx)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("expected most recent run first, got IDs %d, %d", runs[0].ID, runs[1].ID)
	}
}
