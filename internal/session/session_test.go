package session

import (
        "context"
        "errors"
        "path/filepath"
        "testing"
        "time"

        "mmint-cli/internal/command"
        "mmint-cli/internal/mutate"
        "mmint-cli/internal/store"

        "github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newSession(t *testing.T, withHistory bool) (*Session, *clock) {
        t.Helper()
        dir := t.TempDir()
        c := &clock{t: time.Unix(1_700_000_000, 0).UTC()}
        in := command.New(nil)
        in.Now = c.now
        s := &Session{
                Store:  store.Store{Path: filepath.Join(dir, ".mmintdb")},
                Interp: in,
                Now:    c.now,
        }
        if withHistory {
                s.History = &store.History{Path: filepath.Join(dir, "history.sqlite")}
        }
        require.NoError(t, s.Open())
        return s, c
}

func TestExec_PersistsEachCycle(t *testing.T) {
        s, _ := newSession(t, false)
        ctx := context.Background()

        out, err := s.Exec(ctx, "push hello")
        require.NoError(t, err)
        require.Equal(t, "push", out.Command)

        db, err := s.Store.Load()
        require.NoError(t, err)
        require.Len(t, db.Stack, 1)
        require.Equal(t, "hello", db.Items[db.Stack[0]].Value)
}

func TestExec_ErrorKeepsLastGoodState(t *testing.T) {
        s, _ := newSession(t, false)
        ctx := context.Background()
        _, err := s.Exec(ctx, "push a")
        require.NoError(t, err)
        before := s.DB().Clone()

        _, err = s.Exec(ctx, "expand")
        var wk mutate.WrongKindError
        require.True(t, errors.As(err, &wk), "expected WrongKindError, got %v", err)
        require.Equal(t, before, s.DB())
}

func TestExec_WakesSnoozedItemsAfterCommand(t *testing.T) {
        s, c := newSession(t, false)
        ctx := context.Background()
        for _, line := range []string{"push a", "push b", "snooze 1d"} {
                _, err := s.Exec(ctx, line)
                require.NoError(t, err)
        }
        require.Len(t, s.DB().Stack, 1)

        c.t = c.t.Add(25 * time.Hour)
        out, err := s.Exec(ctx, "no such command")
        require.NoError(t, err)
        require.Equal(t, "", out.Command)
        require.Len(t, s.DB().Stack, 2)
        require.Equal(t, "b", s.DB().Items[s.DB().Stack[1]].Value)
}

func TestExec_RecordsMatchedCommandsOnly(t *testing.T) {
        s, _ := newSession(t, true)
        ctx := context.Background()
        for _, line := range []string{"push a", "nonsense", "pop", "pop"} {
                _, _ = s.Exec(ctx, line)
        }

        entries, err := s.History.Recent(ctx, 0)
        require.NoError(t, err)
        require.Len(t, entries, 2)
        require.Equal(t, "pop", entries[0].Command)
        require.Equal(t, 0, entries[0].StackSize)
        require.Equal(t, "push a", entries[1].Line)
}
