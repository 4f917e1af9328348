package store

import (
        "encoding/json"
        "errors"
        "fmt"
        "os"
        "path/filepath"
        "sort"
        "strings"
        "time"

        "mmint-cli/internal/model"
        "mmint-cli/internal/pathutil"

        "go.uber.org/zap"
)

const (
        // CurrentVersion is the schema version Load always returns.
        CurrentVersion = 2

        DefaultFileName = ".mmintdb"
)

// DB is the whole persisted state. Handlers never share a *DB across calls;
// the interpreter hands each one a Clone.
type DB struct {
        Version    int                   `json:"_schema_version"`
        Stack      []string              `json:"stack"`
        Snoozed    []model.Snooze        `json:"snoozed"`
        Items      map[string]model.Item `json:"items"`
        ActivePath string                `json:"activepath"`
}

// New returns an empty current-version DB rooted at "/".
func New() *DB {
        return &DB{
                Version:    CurrentVersion,
                Stack:      []string{},
                Snoozed:    []model.Snooze{},
                Items:      map[string]model.Item{},
                ActivePath: pathutil.Root,
        }
}

// Clone deep-copies db.
func (db *DB) Clone() *DB {
        if db == nil {
                return nil
        }
        out := &DB{
                Version:    db.Version,
                Stack:      append([]string{}, db.Stack...),
                Snoozed:    append([]model.Snooze{}, db.Snoozed...),
                Items:      make(map[string]model.Item, len(db.Items)),
                ActivePath: db.ActivePath,
        }
        for id, it := range db.Items {
                out.Items[id] = it.Clone()
        }
        return out
}

func (db *DB) FindItem(id string) (model.Item, bool) {
        if db == nil || db.Items == nil {
                return model.Item{}, false
        }
        it, ok := db.Items[id]
        return it, ok
}

// normalize fills zero values left by older or hand-edited files and restores
// the snooze ordering invariant.
func (db *DB) normalize() {
        if db.Stack == nil {
                db.Stack = []string{}
        }
        if db.Snoozed == nil {
                db.Snoozed = []model.Snooze{}
        }
        if db.Items == nil {
                db.Items = map[string]model.Item{}
        }
        if strings.TrimSpace(db.ActivePath) == "" {
                db.ActivePath = pathutil.Root
        }
        sort.SliceStable(db.Snoozed, func(i, j int) bool {
                return db.Snoozed[i].Wake.Before(db.Snoozed[j].Wake)
        })
}

// Store persists a DB as a single JSON file at Path.
type Store struct {
        Path   string
        Logger *zap.Logger

        // Now stamps migration backups. Defaults to time.Now.
        Now func() time.Time
}

func (s Store) logger() *zap.Logger {
        if s.Logger == nil {
                return zap.NewNop()
        }
        return s.Logger
}

func (s Store) now() time.Time {
        if s.Now != nil {
                return s.Now()
        }
        return time.Now()
}

// Load reads Path and migrates it to CurrentVersion, writing a backup before
// every migration step.
func (s Store) Load() (*DB, error) {
        b, err := os.ReadFile(s.Path)
        if err != nil {
                return nil, &PersistenceError{Op: "read", Path: s.Path, Err: err}
        }
        return s.checkSchema(b, schemaTransforms)
}

// LoadOrInit is Load, except that a missing file yields a fresh DB.
func (s Store) LoadOrInit() (*DB, error) {
        db, err := s.Load()
        if err == nil {
                return db, nil
        }
        if errors.Is(err, os.ErrNotExist) {
                s.logger().Info("initializing new store", zap.String("path", s.Path))
                return New(), nil
        }
        return nil, err
}

func (s Store) Save(db *DB) error {
        if db == nil {
                return errors.New("nil db")
        }
        b, err := json.Marshal(db)
        if err != nil {
                return fmt.Errorf("encode db: %w", err)
        }
        if err := s.writeRaw(s.Path, b); err != nil {
                return &PersistenceError{Op: "write", Path: s.Path, Err: err}
        }
        return nil
}

func (s Store) writeRaw(path string, b []byte) error {
        dir := filepath.Dir(path)
        if err := os.MkdirAll(dir, 0o755); err != nil {
                return err
        }
        return atomicWriteFile(dir, filepath.Base(path)+".*.tmp", path, b, 0o644)
}
