// Package storage provides SQLite-based persistence for the play journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/boxworld/internal/engine"
)

// Store manages the SQLite database connection for journal persistence.
type Store struct {
	db *sql.DB
}

// Entry represents a single journal record.
type Entry struct {
	ID        int64
	Pack      string
	Session   string
	Kind      engine.EventKind
	Subject   string
	Tick      uint64
	CreatedAt time.Time
}

// KindCount is the number of journal entries of one kind.
type KindCount struct {
	Kind  engine.EventKind
	Count int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			session TEXT NOT NULL,
			kind TEXT NOT NULL,
			subject TEXT NOT NULL,
			tick INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_journal_pack ON journal(pack_id, id DESC);
		CREATE INDEX IF NOT EXISTS idx_journal_session ON journal(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record appends an engine event to the journal.
// Returns the ID of the inserted record.
func (s *Store) Record(packID, session string, ev engine.Event) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO journal (pack_id, session, kind, subject, tick) VALUES (?, ?, ?, ?, ?)",
		packID, session, string(ev.Kind), ev.Subject, int64(ev.Tick),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent retrieves the latest N journal entries for the given pack, newest first.
func (s *Store) Recent(packID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, session, kind, subject, tick, created_at
		 FROM journal
		 WHERE pack_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query journal: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Session retrieves every entry of one play session in recording order.
func (s *Store) Session(session string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, pack_id, session, kind, subject, tick, created_at
		 FROM journal
		 WHERE session = ?
		 ORDER BY id ASC`,
		session,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Counts returns the number of entries per kind for the given pack.
func (s *Store) Counts(packID string) ([]KindCount, error) {
	rows, err := s.db.Query(
		`SELECT kind, COUNT(*) FROM journal WHERE pack_id = ? GROUP BY kind ORDER BY kind`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count journal: %w", err)
	}
	defer rows.Close()

	var counts []KindCount
	for rows.Next() {
		var c KindCount
		var kind string
		if err := rows.Scan(&kind, &c.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Kind = engine.EventKind(kind)
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

// Clear deletes all journal entries for the given pack.
func (s *Store) Clear(packID string) error {
	_, err := s.db.Exec("DELETE FROM journal WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear journal: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind string
		var tick int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pack, &e.Session, &kind, &e.Subject, &tick, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Kind = engine.EventKind(kind)
		e.Tick = uint64(tick)

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
