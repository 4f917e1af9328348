package cli

import (
        "context"
        "strings"

        "github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
        cmd := &cobra.Command{
                Use:   "run <line...>",
                Short: "Apply one command line, then print the stack",
                Long: strings.TrimSpace(`
Runs one prompt cycle without the interactive UI: the arguments are joined
with spaces into a command line, applied, saved, and snoozes are reconciled.

A line that matches no command leaves the store unchanged.
Run "mmint docs commands" for the command table.
`),
                Args: cobra.MinimumNArgs(1),
                RunE: func(cmd *cobra.Command, args []string) error {
                        sess, err := openSession(app)
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        line := strings.Join(args, " ")
                        out, err := sess.Exec(context.Background(), line)
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        v := newStackView(sess.DB(), app.cfg.SummaryLimit)
                        v.Command = out.Command
                        return writeOut(cmd, app, v)
                },
        }
        // Everything after the first argument belongs to the command line
        // (e.g. "mmint run rot -n 2").
        cmd.Flags().SetInterspersed(false)
        return cmd
}
