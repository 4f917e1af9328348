package cli

import (
        "fmt"
        "os"
        "strings"

        "mmint-cli/internal/command"
        "mmint-cli/internal/format"
        "mmint-cli/internal/logging"
        "mmint-cli/internal/session"
        "mmint-cli/internal/store"
        "mmint-cli/internal/tui"

        "github.com/spf13/cobra"
        "go.uber.org/zap"
)

type App struct {
        DBPath     string
        ConfigPath string
        Verbose    bool
        PrettyJSON bool
        Format     string

        cfg    *store.Config
        logger *zap.Logger
}

func NewRootCmd() *cobra.Command {
        app := &App{}

        cmd := &cobra.Command{
                Use:          "mmint",
                Short:        "A stack of notes you push, chunk, snooze and scope by path",
                SilenceUsage: true,
                Example: strings.TrimSpace(`
  # Start the interactive prompt
  mmint

  # Apply one command line and print the stack
  mmint run push buy milk
  mmint run snooze 2d

  # Inspect
  mmint ls --format json
  mmint show 0
`),
                RunE: func(cmd *cobra.Command, args []string) error {
                        // No subcommand => interactive prompt.
                        if len(args) == 0 {
                                return runTUI(app)
                        }
                        return cmd.Help()
                },
        }

        cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
                cfg, err := store.LoadConfig(app.ConfigPath)
                if err != nil {
                        return writeErr(cmd, err)
                }
                if strings.TrimSpace(app.DBPath) != "" {
                        cfg.DB = app.DBPath
                }
                logger, err := logging.New(cfg.Log, app.Verbose)
                if err != nil {
                        return writeErr(cmd, err)
                }
                app.cfg = cfg
                app.logger = logger
                return nil
        }

        cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
                if app.logger != nil {
                        _ = app.logger.Sync()
                }
        }

        cmd.PersistentFlags().StringVar(&app.DBPath, "db", envOr("MMINT_DB", ""), "Path to the store file (default from config, else .mmintdb)")
        cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("MMINT_CONFIG", ""), "Path to config.yaml (default ~/.mmint/config.yaml)")
        cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log at debug level")
        cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
        cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("MMINT_FORMAT", "text"), "Output format (text|json)")

        cmd.AddCommand(newRunCmd(app))
        cmd.AddCommand(newLsCmd(app))
        cmd.AddCommand(newShowCmd(app))
        cmd.AddCommand(newMigrateCmd(app))
        cmd.AddCommand(newHistoryCmd(app))
        cmd.AddCommand(newConfigCmd(app))
        cmd.AddCommand(newDocsCmd(app))

        return cmd
}

func runTUI(app *App) error {
        sess, err := openSession(app)
        if err != nil {
                return err
        }
        return tui.Run(sess, app.cfg.SummaryLimit)
}

func openSession(app *App) (*session.Session, error) {
        s := &session.Session{
                Store:  store.Store{Path: app.cfg.DB, Logger: app.logger},
                Interp: command.New(app.logger),
                Logger: app.logger,
        }
        if p := app.cfg.HistoryPath(); p != "" {
                s.History = &store.History{Path: p}
        }
        if err := s.Open(); err != nil {
                return nil, err
        }
        return s, nil
}

func envOr(k, d string) string {
        if v := os.Getenv(k); v != "" {
                return v
        }
        return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
        return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
        fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
        return err
}
