// Package settings persists user-facing application settings in a small
// SQLite key-value store. Reads fall back to defaults when a key has
// never been written.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/luckylamd/flight-search-engine/internal/i18n"
)

const languageKey = "language"

// Store is a SQLite-backed settings store.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the settings database at the given
// path. Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}

	// WAL keeps reads cheap while a write is in flight
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	schema := `
    CREATE TABLE IF NOT EXISTS settings (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create settings schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Language returns the persisted UI language, or the default when none
// has been saved yet.
func (s *Store) Language(ctx context.Context) (string, error) {
	value, err := s.get(ctx, languageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return i18n.DefaultLanguage, nil
	}
	if err != nil {
		return "", err
	}
	if !i18n.IsSupported(value) {
		// A stale value from an older release; treat as unset.
		return i18n.DefaultLanguage, nil
	}
	return value, nil
}

// SetLanguage persists the UI language. The language must be supported.
func (s *Store) SetLanguage(ctx context.Context, lang string) error {
	if !i18n.IsSupported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	return s.set(ctx, languageKey, lang)
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO settings (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}
