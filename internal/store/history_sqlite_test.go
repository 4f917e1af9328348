package store

import (
        "context"
        "path/filepath"
        "testing"
        "time"

        "github.com/stretchr/testify/require"
)

func TestHistory_AppendAndRecent(t *testing.T) {
        t.Parallel()

        ctx := context.Background()
        h := History{Path: filepath.Join(t.TempDir(), "h.sqlite")}
        base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

        first, err := h.Append(ctx, HistoryEntry{Command: "push", Line: "push a", AppliedAt: base, StackSize: 1})
        require.NoError(t, err)
        require.NotEmpty(t, first.ID)

        _, err = h.Append(ctx, HistoryEntry{Command: "pop", Line: "pop", AppliedAt: base.Add(time.Minute), StackSize: 0})
        require.NoError(t, err)

        all, err := h.Recent(ctx, 0)
        require.NoError(t, err)
        require.Len(t, all, 2)
        require.Equal(t, "pop", all[0].Command)
        require.Equal(t, "push a", all[1].Line)
        require.True(t, all[1].AppliedAt.Equal(base))

        one, err := h.Recent(ctx, 1)
        require.NoError(t, err)
        require.Len(t, one, 1)
        require.Equal(t, "pop", one[0].Command)
}

func TestHistory_RequiresPath(t *testing.T) {
        t.Parallel()

        _, err := History{}.Recent(context.Background(), 0)
        require.Error(t, err)
}
