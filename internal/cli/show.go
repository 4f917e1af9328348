package cli

import (
        "fmt"
        "strconv"

        "mmint-cli/internal/mutate"
        "mmint-cli/internal/render"

        "github.com/spf13/cobra"
)

type itemView struct {
        Index    int    `json:"index"`
        ID       string `json:"id"`
        Kind     string `json:"kind,omitempty"`
        Path     string `json:"path,omitempty"`
        Markdown string `json:"markdown"`

        text string
}

func (v itemView) Text() string { return v.text }

func newShowCmd(app *App) *cobra.Command {
        var (
                raw   bool
                width int
        )

        cmd := &cobra.Command{
                Use:   "show <index>",
                Short: "Show one stack entry in full, rendered as markdown",
                Args:  cobra.ExactArgs(1),
                RunE: func(cmd *cobra.Command, args []string) error {
                        index, err := strconv.Atoi(args[0])
                        if err != nil {
                                return writeErr(cmd, fmt.Errorf("invalid index %q", args[0]))
                        }
                        sess, err := openSession(app)
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        db := sess.DB()
                        if index < 0 || index >= len(db.Stack) {
                                return writeErr(cmd, mutate.IndexOutOfRangeError{Index: index, Len: len(db.Stack)})
                        }

                        md := render.ItemMarkdown(db, index)
                        v := itemView{Index: index, ID: db.Stack[index], Markdown: md, text: md}
                        if it, ok := db.FindItem(v.ID); ok {
                                v.Kind = string(it.Kind)
                                v.Path = it.Path
                        }
                        if !raw {
                                v.text = render.Markdown(md, width)
                        }
                        return writeOut(cmd, app, v)
                },
        }

        cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown in text mode")
        cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered markdown")

        return cmd
}
