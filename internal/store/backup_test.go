package store

import (
        "path/filepath"
        "testing"
        "time"

        "github.com/stretchr/testify/require"
)

func TestWriteBackup_NeverOverwrites(t *testing.T) {
        t.Parallel()

        dir := t.TempDir()
        s := Store{Path: filepath.Join(dir, ".mmintdb"), Now: func() time.Time { return time.Unix(42, 0) }}

        first, err := s.writeBackup([]byte("one"))
        require.NoError(t, err)
        second, err := s.writeBackup([]byte("two"))
        require.NoError(t, err)
        require.Equal(t, s.Path+".bak42", first)
        require.Equal(t, s.Path+".bak42-1", second)

        backups, err := s.Backups()
        require.NoError(t, err)
        require.Equal(t, []string{first, second}, backups)
}

func TestBackups_MissingDir(t *testing.T) {
        t.Parallel()

        s := Store{Path: filepath.Join(t.TempDir(), "missing", ".mmintdb")}
        backups, err := s.Backups()
        require.NoError(t, err)
        require.Empty(t, backups)
}
