package sink

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists records to SQLite as JSON rows, one row per record.
// It is suitable for single-process production use; rows are keyed by
// (branch, event, seq) so stored records stay grouped per event.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite record store.
// The path should be a file path (e.g., "./records.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			branch TEXT NOT NULL,
			class TEXT NOT NULL,
			event INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			created TEXT NOT NULL,
			data TEXT NOT NULL,
			PRIMARY KEY (branch, event, seq)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_records_branch_event
		ON records(branch, event)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// NewBranch implements Store.
func (s *SQLiteStore) NewBranch(name, class string) (Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	return &sqliteBranch{store: s, name: name, class: class}, nil
}

// Count returns the number of records stored for a branch.
func (s *SQLiteStore) Count(branch string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrStoreClosed
	}

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records WHERE branch = ?`, branch).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Event returns the JSON payloads stored for a branch and event ordinal,
// in append order.
func (s *SQLiteStore) Event(branch string, event uint64) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT data FROM records
		WHERE branch = ? AND event = ?
		ORDER BY seq
	`, branch, event)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// sqliteBranch appends rows for one branch.
type sqliteBranch struct {
	store *SQLiteStore
	name  string
	class string
}

// Append implements Branch.
func (b *sqliteBranch) Append(event uint64, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	if b.store.closed {
		return ErrStoreClosed
	}

	// seq is per (branch, event), assigned at insert time so append order
	// is preserved.
	_, err = b.store.db.Exec(`
		INSERT INTO records (branch, class, event, seq, created, data)
		VALUES (
			?, ?, ?,
			COALESCE((SELECT MAX(seq) FROM records WHERE branch = ? AND event = ?), 0) + 1,
			?, ?
		)
	`, b.name, b.class, event, b.name, event,
		time.Now().UTC().Format(time.RFC3339Nano), data)

	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}
