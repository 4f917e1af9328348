package cli

import (
        "fmt"
        "strings"

        "mmint-cli/internal/store"

        "github.com/spf13/cobra"
)

type migrateView struct {
        Path    string   `json:"path"`
        Version int      `json:"version"`
        Backups []string `json:"backups"`
}

func (v migrateView) Text() string {
        var b strings.Builder
        fmt.Fprintf(&b, "%s: schema version %d", v.Path, v.Version)
        for _, p := range v.Backups {
                fmt.Fprintf(&b, "\nbackup: %s", p)
        }
        return b.String()
}

func newMigrateCmd(app *App) *cobra.Command {
        return &cobra.Command{
                Use:   "migrate",
                Short: "Upgrade the store to the current schema (backups are written first)",
                Args:  cobra.NoArgs,
                RunE: func(cmd *cobra.Command, args []string) error {
                        s := store.Store{Path: app.cfg.DB, Logger: app.logger}
                        db, err := s.Load()
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        backups, err := s.Backups()
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        return writeOut(cmd, app, migrateView{Path: s.Path, Version: db.Version, Backups: backups})
                },
        }
}
