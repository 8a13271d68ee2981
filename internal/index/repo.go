package index

import (
	"fmt"
	"time"
)

// NoteRow represents a row in the notes table.
type NoteRow struct {
	Path      string
	Title     string
	Checksum  string
	UpdatedAt time.Time
}

// SearchResult represents one search hit.
type SearchResult struct {
	Path    string
	Title   string
	Snippet string
}

// UpsertNote inserts or replaces a note and its FTS entry within a transaction.
func (db *DB) UpsertNote(n NoteRow, body string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	_, err = tx.Exec(`
		INSERT INTO notes (path, title, checksum, body, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title      = excluded.title,
			checksum   = excluded.checksum,
			body       = excluded.body,
			updated_at = excluded.updated_at
	`, n.Path, n.Title, n.Checksum, body, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert note: %w", err)
	}

	// FTS upsert (no-op when the FTS5 tag is absent).
	if err := ftsUpsert(tx, n.Path, n.Title, body); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteNote removes a note and its FTS entry.
func (db *DB) DeleteNote(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, path)
	_, _ = tx.Exec(`DELETE FROM notes WHERE path = ?`, path)

	return tx.Commit()
}

// GetChecksum returns the stored checksum for a note, or empty string if not found.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM notes WHERE path = ?`, path).Scan(&cs)
	if err != nil {
		return "", nil // not found is fine
	}
	return cs, nil
}

// AllPaths returns every indexed note path. This is the handle list the
// window resolver matches day identifiers against.
func (db *DB) AllPaths() ([]string, error) {
	rows, err := db.conn.Query(`SELECT path FROM notes ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("index: all paths: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AllChecksums returns path → checksum for every indexed note.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

// ListNotes returns a page of notes plus the total count.
// sort is one of "updated_at" (default, newest first), "title", "path".
func (db *DB) ListNotes(limit, offset int, sort string) ([]NoteRow, int, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var orderBy string
	switch sort {
	case "title":
		orderBy = "title COLLATE NOCASE ASC"
	case "path":
		orderBy = "path ASC"
	default:
		orderBy = "updated_at DESC"
	}

	var total int
	if err := db.conn.QueryRow(`SELECT count(*) FROM notes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count notes: %w", err)
	}

	rows, err := db.conn.Query(
		`SELECT path, title, checksum, updated_at FROM notes ORDER BY `+orderBy+` LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list notes: %w", err)
	}
	defer rows.Close()

	var out []NoteRow
	for rows.Next() {
		var n NoteRow
		if err := rows.Scan(&n.Path, &n.Title, &n.Checksum, &n.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, rows.Err()
}
