package cli

import (
        "github.com/spf13/cobra"
)

func newLsCmd(app *App) *cobra.Command {
        return &cobra.Command{
                Use:     "ls",
                Aliases: []string{"list"},
                Short:   "Print the visible stack",
                Args:    cobra.NoArgs,
                RunE: func(cmd *cobra.Command, args []string) error {
                        sess, err := openSession(app)
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        return writeOut(cmd, app, newStackView(sess.DB(), app.cfg.SummaryLimit))
                },
        }
}
