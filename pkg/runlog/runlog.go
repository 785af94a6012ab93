// Package runlog keeps the history of refresh runs in sqlite
package runlog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
)

//go:embed schema.sql
var schema string

// errNoRetry stops lock retries for errors other than busy database
var errNoRetry = errors.New("not retryable")

// Store records refresh summaries
type Store struct {
	db *sqlx.DB
}

// Config defines database parameters
type Config struct {
	DSN          string
	MaxOpenConns int
}

// runSQL is a refresh_runs row
type runSQL struct {
	ID                 int64     `db:"id"`
	Trigger            string    `db:"run_trigger"`
	StartedAt          time.Time `db:"started_at"`
	FinishedAt         time.Time `db:"finished_at"`
	Sources            int       `db:"sources"`
	Updated            int       `db:"updated"`
	Failed             int       `db:"failed"`
	NewPosts           int       `db:"new_posts"`
	AuthorsInserted    int       `db:"authors_inserted"`
	AuthorsUpdated     int       `db:"authors_updated"`
	AggregatedInserted int       `db:"aggregated_inserted"`
	AggregatedUpdated  int       `db:"aggregated_updated"`
}

// New opens the database and applies the schema
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:alliance.db?mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record saves the summary and returns its id
func (s *Store) Record(ctx context.Context, summary domain.RefreshSummary) (int64, error) {
	row := toSQL(summary)
	query := `INSERT INTO refresh_runs (run_trigger, started_at, finished_at, sources, updated, failed, new_posts,
			authors_inserted, authors_updated, aggregated_inserted, aggregated_updated)
		VALUES (:run_trigger, :started_at, :finished_at, :sources, :updated, :failed, :new_posts,
			:authors_inserted, :authors_updated, :aggregated_inserted, :aggregated_updated)`

	var id int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		res, err := s.db.NamedExecContext(ctx, query, row)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return fmt.Errorf("%w: %w", errNoRetry, err)
		}
		id, err = res.LastInsertId()
		return err
	}, errNoRetry)
	if err != nil {
		return 0, fmt.Errorf("record refresh run: %w", err)
	}
	return id, nil
}

// Recent returns the latest runs, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.RefreshSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []runSQL
	query := `SELECT * FROM refresh_runs ORDER BY started_at DESC, id DESC LIMIT ?`
	if err := s.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("select refresh runs: %w", err)
	}

	res := make([]domain.RefreshSummary, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.toDomain())
	}
	return res, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func toSQL(s domain.RefreshSummary) runSQL {
	newPosts := s.NewPostsCount
	if newPosts == 0 {
		newPosts = len(s.NewPosts)
	}
	return runSQL{
		Trigger:            s.Trigger,
		StartedAt:          s.StartedAt.UTC(),
		FinishedAt:         s.FinishedAt.UTC(),
		Sources:            s.Sources,
		Updated:            s.Updated,
		Failed:             s.Failed,
		NewPosts:           newPosts,
		AuthorsInserted:    s.AuthorsInserted,
		AuthorsUpdated:     s.AuthorsUpdated,
		AggregatedInserted: s.AggregatedInserted,
		AggregatedUpdated:  s.AggregatedUpdated,
	}
}

func (r runSQL) toDomain() domain.RefreshSummary {
	return domain.RefreshSummary{
		ID:                 r.ID,
		Trigger:            r.Trigger,
		StartedAt:          r.StartedAt,
		FinishedAt:         r.FinishedAt,
		Sources:            r.Sources,
		Updated:            r.Updated,
		Failed:             r.Failed,
		NewContentFound:    r.NewPosts > 0,
		NewPostsCount:      r.NewPosts,
		AuthorsInserted:    r.AuthorsInserted,
		AuthorsUpdated:     r.AuthorsUpdated,
		AggregatedInserted: r.AggregatedInserted,
		AggregatedUpdated:  r.AggregatedUpdated,
	}
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
