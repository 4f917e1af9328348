package store

import (
        "context"
        "database/sql"
        "errors"
        "os"
        "path/filepath"
        "strings"
        "time"

        "github.com/google/uuid"

        _ "modernc.org/sqlite"
)

// HistoryEntry is one successfully applied command line.
type HistoryEntry struct {
        ID        string    `json:"id"`
        Command   string    `json:"command"`
        Line      string    `json:"line"`
        AppliedAt time.Time `json:"appliedAt"`
        StackSize int       `json:"stackSize"`
}

// History is an append-only command log kept in a SQLite file next to the
// store. It is never read back into the DB.
type History struct {
        Path string
}

func (h History) open(ctx context.Context) (*sql.DB, error) {
        if strings.TrimSpace(h.Path) == "" {
                return nil, errors.New("history: path not set")
        }
        if err := os.MkdirAll(filepath.Dir(h.Path), 0o755); err != nil {
                return nil, err
        }
        // modernc.org/sqlite driver name is "sqlite".
        db, err := sql.Open("sqlite", h.Path)
        if err != nil {
                return nil, err
        }
        pragmas := []string{
                "PRAGMA journal_mode=WAL;",
                "PRAGMA synchronous=NORMAL;",
                "PRAGMA busy_timeout=5000;",
        }
        for _, p := range pragmas {
                if _, err := db.ExecContext(ctx, p); err != nil {
                        _ = db.Close()
                        return nil, err
                }
        }
        if err := migrateHistory(ctx, db); err != nil {
                _ = db.Close()
                return nil, err
        }
        return db, nil
}

func migrateHistory(ctx context.Context, db *sql.DB) error {
        stmts := []string{
                `CREATE TABLE IF NOT EXISTS history (
                        event_id TEXT PRIMARY KEY,
                        command TEXT NOT NULL,
                        line TEXT NOT NULL,
                        applied_at_unixms INTEGER NOT NULL,
                        stack_size INTEGER NOT NULL
                );`,
                `CREATE INDEX IF NOT EXISTS idx_history_applied ON history(applied_at_unixms);`,
        }
        for _, st := range stmts {
                if _, err := db.ExecContext(ctx, st); err != nil {
                        return err
                }
        }
        return nil
}

// Append records e, filling ID and AppliedAt when empty.
func (h History) Append(ctx context.Context, e HistoryEntry) (HistoryEntry, error) {
        if strings.TrimSpace(e.ID) == "" {
                e.ID = uuid.NewString()
        }
        if e.AppliedAt.IsZero() {
                e.AppliedAt = time.Now()
        }
        e.AppliedAt = e.AppliedAt.UTC()

        db, err := h.open(ctx)
        if err != nil {
                return HistoryEntry{}, err
        }
        defer db.Close()

        if _, err := db.ExecContext(ctx,
                `INSERT INTO history(event_id, command, line, applied_at_unixms, stack_size) VALUES(?, ?, ?, ?, ?)`,
                e.ID, e.Command, e.Line, e.AppliedAt.UnixMilli(), e.StackSize,
        ); err != nil {
                return HistoryEntry{}, err
        }
        return e, nil
}

// Recent returns up to limit entries, newest first. limit <= 0 means all.
func (h History) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
        db, err := h.open(ctx)
        if err != nil {
                return nil, err
        }
        defer db.Close()

        q := `SELECT event_id, command, line, applied_at_unixms, stack_size
                FROM history
                ORDER BY applied_at_unixms DESC, rowid DESC`
        var rows *sql.Rows
        if limit > 0 {
                rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
        } else {
                rows, err = db.QueryContext(ctx, q)
        }
        if err != nil {
                return nil, err
        }
        defer rows.Close()

        out := []HistoryEntry{}
        for rows.Next() {
                var (
                        e         HistoryEntry
                        appliedMs int64
                )
                if err := rows.Scan(&e.ID, &e.Command, &e.Line, &appliedMs, &e.StackSize); err != nil {
                        return nil, err
                }
                e.AppliedAt = time.UnixMilli(appliedMs).UTC()
                out = append(out, e)
        }
        if err := rows.Err(); err != nil {
                return nil, err
        }
        return out, nil
}
