package archive

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/watiko/zsh-history-utils/internal/zsh"

	_ "modernc.org/sqlite"
)

// Record is a stored history entry.
type Record struct {
	ID     int64
	Entry  zsh.Entry
	Source string
}

// Repository keeps history entries in an SQLite database so they can be
// queried with SQL.
type Repository struct {
	db *sql.DB
}

// NewRepository opens or creates the database at path.
func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

// Open opens an existing database at path without creating one.
func Open(path string) (*Repository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return NewRepository(path)
}

func (r *Repository) init() error {
	historyQuery := `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		start_time INTEGER NOT NULL,
		finish_time INTEGER NOT NULL,
		duration INTEGER NOT NULL,
		command TEXT NOT NULL,
		source TEXT NOT NULL DEFAULT '',
		UNIQUE (start_time, finish_time, command)
	)
	`
	if _, err := r.db.Exec(historyQuery); err != nil {
		return err
	}

	_, err := r.db.Exec(`CREATE INDEX IF NOT EXISTS history_start_time ON history (start_time)`)
	return err
}

// Close closes the database.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Import stores entries read from source in one transaction and returns how
// many were new. Entries already present are skipped.
func (r *Repository) Import(source string, entries []zsh.Entry) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
	INSERT OR IGNORE INTO history (start_time, finish_time, duration, command, source)
	VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return 0, fmt.Errorf("%s: %w", source, err)
		}
		res, err := stmt.Exec(int64(entry.StartTime), int64(entry.FinishTime), int64(entry.Duration()), entry.Command, source)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Count returns the number of stored entries.
func (r *Repository) Count() (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM history").Scan(&n)
	return n, err
}

// Search returns entries whose command contains substr, oldest first.
func (r *Repository) Search(substr string, limit int) ([]Record, error) {
	rows, err := r.db.Query(`
	SELECT id, start_time, finish_time, command, source FROM history
	WHERE instr(command, ?) > 0
	ORDER BY start_time, id
	LIMIT ?
	`, substr, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var start, finish int64
		if err := rows.Scan(&rec.ID, &start, &finish, &rec.Entry.Command, &rec.Source); err != nil {
			return nil, err
		}
		rec.Entry.StartTime = uint64(start)
		rec.Entry.FinishTime = uint64(finish)
		records = append(records, rec)
	}
	return records, rows.Err()
}
