// Package history persists submitted entries to a local SQLite
// database so previous notes can be recalled into the input field.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/jot/internal/log"
)

// schema is applied on every open; CREATE IF NOT EXISTS keeps it
// idempotent across versions that share the same shape.
const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	guid TEXT NOT NULL UNIQUE,
	text TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
`

// Entry is one submitted line of text.
type Entry struct {
	ID        int64
	GUID      string
	Text      string
	CreatedAt time.Time
}

// Store provides access to the entry history.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.ErrorErr(log.CatHistory, "Failed to create history directory", err, "path", path)
		return nil, err
	}
	log.Debug(log.CatHistory, "Opening history database", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatHistory, "Failed to open history database", err, "path", path)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		log.ErrorErr(log.CatHistory, "Failed to ping history database", err, "path", path)
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		log.ErrorErr(log.CatHistory, "Failed to apply history schema", err, "path", path)
		db.Close()
		return nil, err
	}
	log.Info(log.CatHistory, "Connected to history database", "path", path)
	return &Store{db: db, dbPath: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a submitted text and returns the stored entry.
func (s *Store) Add(text string) (Entry, error) {
	entry := Entry{
		GUID:      uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	res, err := s.db.Exec(
		`INSERT INTO entries (guid, text, created_at) VALUES (?, ?, ?)`,
		entry.GUID, entry.Text, entry.CreatedAt,
	)
	if err != nil {
		log.ErrorErr(log.CatHistory, "Failed to insert history entry", err)
		return Entry{}, err
	}
	entry.ID, err = res.LastInsertId()
	if err != nil {
		return Entry{}, err
	}
	log.Debug(log.CatHistory, "Recorded history entry", "id", entry.ID, "bytes", len(text))
	return entry, nil
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}
	rows, err := s.db.Query(
		`SELECT id, guid, text, created_at FROM entries ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		log.ErrorErr(log.CatHistory, "Recent query failed", err, "limit", n)
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// All returns every entry, oldest first.
func (s *Store) All() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, guid, text, created_at FROM entries ORDER BY id ASC`,
	)
	if err != nil {
		log.ErrorErr(log.CatHistory, "All query failed", err)
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.GUID, &e.Text, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
