// Package sqlite provides a SQLite-backed recording store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gridlife/internal/recording"
	"gridlife/internal/recording/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store persists recordings and frames in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// ErrNotFound reports a missing recording.
var ErrNotFound = errors.New("recording not found")

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite recording store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateRecording inserts one recording row and returns its metadata.
func (s *Store) CreateRecording(ctx context.Context, name string, rows, cols int) (recording.Recording, error) {
	if err := ctx.Err(); err != nil {
		return recording.Recording{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return recording.Recording{}, fmt.Errorf("recording name is required")
	}
	if rows < 1 || cols < 1 {
		return recording.Recording{}, fmt.Errorf("recording shape %dx%d is invalid", rows, cols)
	}
	createdAt := time.Now().UTC()
	res, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO recordings (name, rows, cols, created_at) VALUES (?, ?, ?, ?)`,
		name, rows, cols, toMillis(createdAt),
	)
	if err != nil {
		return recording.Recording{}, fmt.Errorf("insert recording: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return recording.Recording{}, fmt.Errorf("recording id: %w", err)
	}
	return recording.Recording{
		ID:        id,
		Name:      name,
		Rows:      rows,
		Cols:      cols,
		CreatedAt: createdAt,
	}, nil
}

// AppendFrame inserts one frame row for the recording.
func (s *Store) AppendFrame(ctx context.Context, recordingID int64, frame recording.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec, err := s.GetRecording(ctx, recordingID)
	if err != nil {
		return err
	}
	if len(frame.Alive) != rec.Rows*rec.Cols {
		return fmt.Errorf("frame has %d cells, recording shape is %dx%d", len(frame.Alive), rec.Rows, rec.Cols)
	}
	capturedAt := frame.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = time.Now().UTC()
	}
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO frames (recording_id, idx, generation, population, captured_at, cells)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		recordingID, frame.Index, frame.Generation, frame.Population,
		toMillis(capturedAt), frame.Alive,
	)
	if err != nil {
		return fmt.Errorf("insert frame: %w", err)
	}
	return nil
}

const recordingColumns = `r.id, r.name, r.rows, r.cols, r.created_at,
	(SELECT COUNT(1) FROM frames f WHERE f.recording_id = r.id)`

func scanRecording(scan func(dest ...any) error) (recording.Recording, error) {
	var rec recording.Recording
	var createdAt int64
	if err := scan(&rec.ID, &rec.Name, &rec.Rows, &rec.Cols, &createdAt, &rec.FrameCount); err != nil {
		return recording.Recording{}, err
	}
	rec.CreatedAt = fromMillis(createdAt)
	return rec, nil
}

// ListRecordings returns all recordings, newest first.
func (s *Store) ListRecordings(ctx context.Context) ([]recording.Recording, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+recordingColumns+` FROM recordings r ORDER BY r.created_at DESC, r.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	var out []recording.Recording
	for rows.Next() {
		rec, err := scanRecording(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recordings: %w", err)
	}
	return out, nil
}

// GetRecording returns one recording by id, ErrNotFound when absent.
func (s *Store) GetRecording(ctx context.Context, id int64) (recording.Recording, error) {
	if err := ctx.Err(); err != nil {
		return recording.Recording{}, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+recordingColumns+` FROM recordings r WHERE r.id = ?`,
		id,
	)
	rec, err := scanRecording(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return recording.Recording{}, ErrNotFound
	}
	if err != nil {
		return recording.Recording{}, fmt.Errorf("get recording: %w", err)
	}
	return rec, nil
}

// Frames returns the recording's frames ordered by index.
func (s *Store) Frames(ctx context.Context, recordingID int64) ([]recording.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := s.GetRecording(ctx, recordingID); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT idx, generation, population, captured_at, cells
		 FROM frames WHERE recording_id = ? ORDER BY idx`,
		recordingID,
	)
	if err != nil {
		return nil, fmt.Errorf("query frames: %w", err)
	}
	defer rows.Close()

	var out []recording.Frame
	for rows.Next() {
		var frame recording.Frame
		var capturedAt int64
		if err := rows.Scan(&frame.Index, &frame.Generation, &frame.Population, &capturedAt, &frame.Alive); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		frame.CapturedAt = fromMillis(capturedAt)
		out = append(out, frame)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frames: %w", err)
	}
	return out, nil
}

// DeleteRecording removes a recording and its frames.
func (s *Store) DeleteRecording(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM frames WHERE recording_id = ?`, id); err != nil {
		return fmt.Errorf("delete frames: %w", err)
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM recordings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recording: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recording result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
