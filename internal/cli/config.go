package cli

import (
        "errors"
        "fmt"
        "os"

        "mmint-cli/internal/store"

        "github.com/spf13/cobra"
        "gopkg.in/yaml.v3"
)

type configView struct {
        Path   string        `json:"path"`
        Config *store.Config `json:"config"`
}

func (v configView) Text() string {
        b, err := yaml.Marshal(v.Config)
        if err != nil {
                return err.Error()
        }
        return fmt.Sprintf("# %s\n%s", v.Path, b)
}

func newConfigCmd(app *App) *cobra.Command {
        cmd := &cobra.Command{
                Use:   "config",
                Short: "Inspect or create the config file",
        }

        cmd.AddCommand(&cobra.Command{
                Use:   "show",
                Short: "Print the effective config",
                Args:  cobra.NoArgs,
                RunE: func(cmd *cobra.Command, args []string) error {
                        path, err := configPath(app)
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        return writeOut(cmd, app, configView{Path: path, Config: app.cfg})
                },
        })

        var force bool
        initCmd := &cobra.Command{
                Use:   "init",
                Short: "Write a config file with the defaults",
                Args:  cobra.NoArgs,
                RunE: func(cmd *cobra.Command, args []string) error {
                        path, err := configPath(app)
                        if err != nil {
                                return writeErr(cmd, err)
                        }
                        if _, err := os.Stat(path); err == nil && !force {
                                return writeErr(cmd, fmt.Errorf("config already exists: %s (use --force to overwrite)", path))
                        } else if err != nil && !errors.Is(err, os.ErrNotExist) {
                                return writeErr(cmd, err)
                        }
                        cfg := store.DefaultConfig()
                        if err := store.SaveConfig(path, cfg); err != nil {
                                return writeErr(cmd, err)
                        }
                        return writeOut(cmd, app, configView{Path: path, Config: cfg})
                },
        }
        initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
        cmd.AddCommand(initCmd)

        return cmd
}

func configPath(app *App) (string, error) {
        if app.ConfigPath != "" {
                return app.ConfigPath, nil
        }
        return store.ConfigPath()
}
