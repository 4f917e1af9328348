package cli

import (
        "context"
        "fmt"
        "strings"
        "time"

        "mmint-cli/internal/store"

        "github.com/spf13/cobra"
)

type historyView struct {
        Entries []store.HistoryEntry `json:"entries"`
}

func (v historyView) Text() string {
        lines := make([]string, 0, len(v.Entries))
        for _, e := range v.Entries {
                lines = append(lines, fmt.Sprintf("%s  %-8s %q (stack %d)", e.AppliedAt.Local().Format(time.DateTime), e.Command, e.Line, e.StackSize))
        }
        return strings.Join(lines, "\n")
}

func newHistoryCmd(app *App) *cobra.Command {
        var limit int

        cmd := &cobra.Command{
                Use:   "history",
                Short: "List recently applied command lines, newest first",
                Args:  cobra.NoArgs,
                RunE: func(cmd *cobra.Command, args []string) error {
                        p := app.cfg.HistoryPath()
                        if p == "" {
                                return writeErr(cmd, errHistoryDisabled)
                        }
                        entries, err := store.History{Path: p}.Recent(context.Background(), limit)
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        return writeOut(cmd, app, historyView{Entries: entries})
                },
        }

        cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries (0 = all)")

        return cmd
}
