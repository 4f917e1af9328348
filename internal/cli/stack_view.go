package cli

import (
        "mmint-cli/internal/pathutil"
        "mmint-cli/internal/render"
        "mmint-cli/internal/store"
)

type stackRow struct {
        Index   int    `json:"index"`
        ID      string `json:"id"`
        Kind    string `json:"kind,omitempty"`
        Path    string `json:"path,omitempty"`
        Display string `json:"display"`
        Summary string `json:"summary"`
}

type stackView struct {
        Command    string     `json:"command,omitempty"`
        ActivePath string     `json:"activePath"`
        Stack      []stackRow `json:"stack"`
        Snoozed    int        `json:"snoozed"`

        text string
}

func (v stackView) Text() string { return v.text }

func newStackView(db *store.DB, summaryLimit int) stackView {
        v := stackView{
                ActivePath: db.ActivePath,
                Stack:      make([]stackRow, 0, len(db.Stack)),
                Snoozed:    len(db.Snoozed),
                text:       render.Renderer{SummaryLimit: summaryLimit}.Stack(db),
        }
        for i, id := range db.Stack {
                limit := summaryLimit
                if i == 0 {
                        limit = render.Unlimited
                }
                row := stackRow{
                        Index:   i,
                        ID:      id,
                        Display: pathutil.Display(db.ActivePath, db.ActivePath),
                        Summary: render.Summary(db, id, limit),
                }
                if it, ok := db.FindItem(id); ok {
                        row.Kind = string(it.Kind)
                        row.Path = it.Path
                        row.Display = pathutil.Display(db.ActivePath, it.Path)
                }
                v.Stack = append(v.Stack, row)
        }
        return v
}
