package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"MeAPI_Playground/internal/models"

	"github.com/google/uuid"
	"modernc.org/sqlite"
)

// SQLITE_CONSTRAINT_UNIQUE
const sqliteConstraintUnique = 2067

// SQLiteStore keeps each profile as a JSON document in a single table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// OpenSQLite opens (or creates) the database at path and makes sure the
// schema exists. Pass ":memory:" for an in-memory database (used by tests).
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and avoids "database is locked".
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	createProfilesTable := `
	CREATE TABLE IF NOT EXISTS profiles (
			"seq" INTEGER PRIMARY KEY AUTOINCREMENT,
			"id" TEXT NOT NULL UNIQUE,
			"email" TEXT NOT NULL UNIQUE,
			"document" TEXT NOT NULL,
			"created_at" INTEGER NOT NULL,
			"updated_at" INTEGER NOT NULL
	);`
	createProfilesIndex := `CREATE INDEX IF NOT EXISTS idx_profiles_created ON profiles(created_at)`

	if _, err := db.Exec(createProfilesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating profiles table: %w", err)
	}
	if _, err := db.Exec(createProfilesIndex); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating profiles index: %w", err)
	}
	slog.Debug("sqlite store ready", "path", path)

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) LoadLatestProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	var document string

	row := s.db.QueryRowContext(ctx, "SELECT document FROM profiles ORDER BY created_at DESC, seq DESC LIMIT 1")
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, ErrProfileNotFound
		}
		return p, fmt.Errorf("loading latest profile: %w", err)
	}

	if err := json.Unmarshal([]byte(document), &p); err != nil {
		return p, fmt.Errorf("decoding profile document: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) CreateProfile(ctx context.Context, p *models.Profile) error {
	return s.insert(ctx, s.db, p)
}

func (s *SQLiteStore) SaveProfile(ctx context.Context, p *models.Profile) error {
	p.UpdatedAt = s.now().UTC()
	document, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile document: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE profiles SET email = ?, document = ?, updated_at = ? WHERE id = ?",
		p.Email, string(document), p.UpdatedAt.UnixNano(), p.ID)
	if err != nil {
		return translateWriteError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	if rows == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (s *SQLiteStore) ReplaceAllProfiles(ctx context.Context, p *models.Profile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM profiles"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing profiles: %w", err)
	}
	if err := s.insert(ctx, tx, p); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing profile replacement: %w", err)
	}
	return nil
}

func (s *SQLiteStore) insert(ctx context.Context, db execer, p *models.Profile) error {
	now := s.now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	document, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile document: %w", err)
	}

	_, err = db.ExecContext(ctx,
		"INSERT INTO profiles(id, email, document, created_at, updated_at) VALUES(?, ?, ?, ?, ?)",
		p.ID, p.Email, string(document), now.UnixNano(), now.UnixNano())
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

func translateWriteError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
		return ErrEmailExists
	}
	return fmt.Errorf("writing profile: %w", err)
}
