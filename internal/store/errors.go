package store

import "fmt"

// PersistenceError reports an unreadable or unwritable backing file.
type PersistenceError struct {
        Op   string
        Path string
        Err  error
}

func (e *PersistenceError) Error() string {
        return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

type UnsupportedVersionError struct {
        Version int
}

func (e UnsupportedVersionError) Error() string {
        return fmt.Sprintf("unsupported schema version %d (this build understands up to %d)", e.Version, CurrentVersion)
}
