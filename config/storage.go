package config

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// LocalStorage keeps whole-collection JSON payloads under named buckets
// in a single local SQLite file. Each bucket holds one JSON array and is
// rewritten in full on every store mutation; there is no row-level or
// incremental persistence.
type LocalStorage struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Storage is the process-wide storage handle, set once in main.
var Storage *LocalStorage

// OpenStorage opens (creating if needed) the storage file at path.
func OpenStorage(path string) (*LocalStorage, error) {
	if path == "" {
		path = "victoria-nails.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &LocalStorage{db: db, path: path}, nil
}

// ReadBucket returns the stored payload for bucket, or nil when the
// bucket has never been written.
func (s *LocalStorage) ReadBucket(bucket string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, bucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bucket %s: %w", bucket, err)
	}
	return payload, nil
}

// WriteBucket replaces the payload stored under bucket.
func (s *LocalStorage) WriteBucket(bucket string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO state (bucket, payload) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, bucket, payload)
	if err != nil {
		return fmt.Errorf("write bucket %s: %w", bucket, err)
	}
	return nil
}

// BackupTo writes a consistent point-in-time copy of the storage file.
func (s *LocalStorage) BackupTo(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	quoted := strings.ReplaceAll(path, "'", "''")
	if _, err := s.db.Exec(fmt.Sprintf("VACUUM INTO '%s'", quoted)); err != nil {
		return fmt.Errorf("backup to %s: %w", path, err)
	}
	return nil
}

// Path returns the location of the storage file.
func (s *LocalStorage) Path() string { return s.path }

func (s *LocalStorage) Close() error { return s.db.Close() }
