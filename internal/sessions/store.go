package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"chronicle/internal/config"
)

// Store manages session persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the sessions database. The store holds an
// exclusive file lock until Close; a second Open against the same data
// directory fails immediately.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "sessions.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire sessions lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another chronicle run is already using this data directory")
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "sessions.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
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
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Path returns the location of the sessions database file.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the database connection and releases the run lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var closeErr error
	if s.db != nil {
		closeErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	return closeErr
}

// Record inserts a completed session. A missing ID or timestamp is filled in.
func (s *Store) Record(ctx context.Context, session *Session) error {
	if session == nil {
		return errors.New("session is nil")
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (
            id, created_at, input_path, report_path,
            total_processed, kept, duplicates_flagged,
            category_count, group_count, stats_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.CreatedAt.Format(time.RFC3339Nano),
		nullableString(session.InputPath),
		nullableString(session.ReportPath),
		session.TotalProcessed,
		session.Kept,
		session.DuplicatesFlagged,
		session.CategoryCount,
		session.GroupCount,
		nullableString(session.StatsJSON),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get fetches a session by identifier. It returns nil when no session
// matches.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// List returns sessions newest first. A limit <= 0 returns all sessions.
func (s *Store) List(ctx context.Context, limit int) ([]*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Clear removes all recorded sessions.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, fmt.Errorf("clear sessions: %w", err)
	}
	return res.RowsAffected()
}

const sessionColumns = "id, created_at, input_path, report_path, total_processed, kept, duplicates_flagged, category_count, group_count, stats_json"

func scanSession(scanner interface{ Scan(dest ...any) error }) (*Session, error) {
	var (
		id         string
		createdRaw string
		inputPath  sql.NullString
		reportPath sql.NullString
		total      int
		kept       int
		duplicates int
		categories int
		groups     int
		statsJSON  sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&createdRaw,
		&inputPath,
		&reportPath,
		&total,
		&kept,
		&duplicates,
		&categories,
		&groups,
		&statsJSON,
	); err != nil {
		return nil, err
	}

	session := &Session{
		ID:                id,
		InputPath:         inputPath.String,
		ReportPath:        reportPath.String,
		TotalProcessed:    total,
		Kept:              kept,
		DuplicatesFlagged: duplicates,
		CategoryCount:     categories,
		GroupCount:        groups,
		StatsJSON:         statsJSON.String,
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		session.CreatedAt = created
	}
	return session, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
