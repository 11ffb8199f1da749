package episodic

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNoRuns indicates the store holds no recorded analysis runs.
var ErrNoRuns = errors.New("no analysis runs recorded")

// A Store persists analysis runs in SQLite so results outlive the process.
type Store struct {
	db   *sql.DB
	path string
}

// storeTimeLayout is RFC 3339 with zero-padded nanoseconds. Timestamps are
// stored as text and ordered lexicographically, so they must be fixed width;
// time.RFC3339Nano trims trailing zeros and breaks that ordering.
const storeTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const storeSchema = `
CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    source      TEXT NOT NULL,
    started_at  TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    row_count   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS analysis_rows (
    run_id         TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    row_id         INTEGER NOT NULL,
    episode_id     TEXT NOT NULL,
    negative_score REAL NOT NULL,
    neutral_score  REAL NOT NULL,
    positive_score REAL NOT NULL,
    compound_score REAL NOT NULL,
    character_words TEXT NOT NULL,
    arousal_score  REAL NOT NULL,
    valence_score  REAL NOT NULL,
    description    TEXT NOT NULL,
    imdb_rating    REAL NOT NULL,
    season         INTEGER NOT NULL,
    PRIMARY KEY (run_id, row_id)
);
`

// OpenStore initializes or connects to the results database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(storeSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records one completed analysis run and its rows, returning the
// run's identifier.
func (s *Store) SaveRun(ctx context.Context, source string, startedAt time.Time, rows []Row) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, started_at, finished_at, row_count) VALUES (?, ?, ?, ?, ?)`,
		runID,
		source,
		startedAt.UTC().Format(storeTimeLayout),
		time.Now().UTC().Format(storeTimeLayout),
		len(rows),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO analysis_rows (
        run_id, row_id, episode_id,
        negative_score, neutral_score, positive_score, compound_score,
        character_words, arousal_score, valence_score, description,
        imdb_rating, season
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err = stmt.ExecContext(ctx,
			runID, row.ID, row.EpisodeID,
			row.Negative, row.Neutral, row.Positive, row.Compound,
			row.Text, row.Arousal, row.Valence, row.Description,
			row.Rating, row.Season,
		)
		if err != nil {
			return "", fmt.Errorf("insert row %d: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// Rows returns the analysis rows of a run in row order.
func (s *Store) Rows(ctx context.Context, runID string) ([]Row, error) {
	result, err := s.db.QueryContext(ctx, `SELECT
        row_id, episode_id,
        negative_score, neutral_score, positive_score, compound_score,
        character_words, arousal_score, valence_score, description,
        imdb_rating, season
    FROM analysis_rows WHERE run_id = ? ORDER BY row_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer result.Close()

	var rows []Row
	for result.Next() {
		var row Row
		err = result.Scan(
			&row.ID, &row.EpisodeID,
			&row.Negative, &row.Neutral, &row.Positive, &row.Compound,
			&row.Text, &row.Arousal, &row.Valence, &row.Description,
			&row.Rating, &row.Season,
		)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return rows, nil
}

// LastRun returns the identifier of the most recently finished run.
func (s *Store) LastRun(ctx context.Context) (string, error) {
	var runID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM runs ORDER BY finished_at DESC LIMIT 1`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoRuns
	}
	if err != nil {
		return "", fmt.Errorf("query last run: %w", err)
	}
	return runID, nil
}
