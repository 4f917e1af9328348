package store

import (
        "errors"
        "fmt"
        "os"
        "path/filepath"
        "strings"

        validation "github.com/go-ozzo/ozzo-validation/v4"
        "gopkg.in/yaml.v3"
)

// HistoryOff disables the command history log.
const HistoryOff = "off"

type Config struct {
        // DB is the store file. Relative paths are relative to the working directory.
        DB string `yaml:"db"`

        // History is the SQLite command log. Empty means "<db>.history.sqlite".
        History string `yaml:"history,omitempty"`

        // SummaryLimit caps the lines shown for chunks below the top of the stack.
        SummaryLimit int `yaml:"summaryLimit"`

        Log LogConfig `yaml:"log"`
}

type LogConfig struct {
        Level string `yaml:"level"`
        // File receives JSON log lines. Empty disables logging.
        File string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
        return &Config{
                DB:           DefaultFileName,
                SummaryLimit: 3,
                Log:          LogConfig{Level: "info"},
        }
}

func (c *Config) Validate() error {
        if err := validation.ValidateStruct(c,
                validation.Field(&c.DB, validation.Required),
                validation.Field(&c.SummaryLimit, validation.Min(0)),
        ); err != nil {
                return err
        }
        return c.Log.Validate()
}

func (c *LogConfig) Validate() error {
        return validation.ValidateStruct(c,
                validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
        )
}

// HistoryPath returns the history file, or "" when history is disabled.
func (c *Config) HistoryPath() string {
        h := strings.TrimSpace(c.History)
        switch {
        case strings.EqualFold(h, HistoryOff):
                return ""
        case h == "":
                return c.DB + ".history.sqlite"
        default:
                return h
        }
}

func ConfigDir() (string, error) {
        // Test/advanced override (keeps unit tests from touching ~/.mmint).
        if v := strings.TrimSpace(os.Getenv("MMINT_CONFIG_DIR")); v != "" {
                return v, nil
        }
        home, err := os.UserHomeDir()
        if err != nil {
                return "", err
        }
        return filepath.Join(home, ".mmint"), nil
}

func ConfigPath() (string, error) {
        dir, err := ConfigDir()
        if err != nil {
                return "", err
        }
        return filepath.Join(dir, "config.yaml"), nil
}

// LoadConfig reads path (ConfigPath when empty) over the defaults. A missing
// file yields the defaults. Environment variables in the file are expanded.
func LoadConfig(path string) (*Config, error) {
        if path == "" {
                p, err := ConfigPath()
                if err != nil {
                        return nil, err
                }
                path = p
        }
        cfg := DefaultConfig()
        b, err := os.ReadFile(path)
        if err != nil {
                if errors.Is(err, os.ErrNotExist) {
                        return cfg, nil
                }
                return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
        }
        if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(b))), cfg); err != nil {
                return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
        }
        if err := cfg.Validate(); err != nil {
                return nil, fmt.Errorf("config validation failed: %w", err)
        }
        return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
        if cfg == nil {
                return errors.New("nil config")
        }
        if err := cfg.Validate(); err != nil {
                return fmt.Errorf("config validation failed: %w", err)
        }
        if path == "" {
                p, err := ConfigPath()
                if err != nil {
                        return err
                }
                path = p
        }
        dir := filepath.Dir(path)
        if err := os.MkdirAll(dir, 0o755); err != nil {
                return err
        }
        b, err := yaml.Marshal(cfg)
        if err != nil {
                return err
        }
        return atomicWriteFile(dir, "config.yaml.*.tmp", path, b, 0o644)
}
