package credential

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create credential schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("credential store opened")
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Save(key string) error {
	if key == "" {
		_, err := s.db.Exec(`DELETE FROM settings WHERE name = ?`, apiKeyName)
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (name, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		apiKeyName, key,
	)
	return err
}

func (s *SQLiteStore) Load() (string, error) {
	var key string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE name = ?`, apiKeyName).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return key, nil
}

// Path is the database file backing the store.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
