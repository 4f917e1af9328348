package cli

import (
        "bytes"
        "encoding/json"
        "os"
        "path/filepath"
        "strings"
        "testing"

        "github.com/stretchr/testify/require"
)

type env struct {
        dir    string
        db     string
        config string
}

func newEnv(t *testing.T) env {
        t.Helper()
        dir := t.TempDir()
        return env{
                dir:    dir,
                db:     filepath.Join(dir, ".mmintdb"),
                config: filepath.Join(dir, "config.yaml"),
        }
}

func (e env) args(extra ...string) []string {
        return append([]string{"--db", e.db, "--config", e.config, "--format", "json"}, extra...)
}

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
        t.Helper()

        cmd := NewRootCmd()

        var outBuf bytes.Buffer
        var errBuf bytes.Buffer
        cmd.SetOut(&outBuf)
        cmd.SetErr(&errBuf)
        cmd.SetArgs(args)

        e := cmd.Execute()
        return outBuf.Bytes(), errBuf.Bytes(), e
}

func decodeStack(t *testing.T, b []byte) stackView {
        t.Helper()
        var v stackView
        require.NoError(t, json.Unmarshal(b, &v), "output: %s", b)
        return v
}

func summaries(v stackView) []string {
        out := make([]string, 0, len(v.Stack))
        for _, r := range v.Stack {
                out = append(out, r.Summary)
        }
        return out
}

func TestRun_AppliesAndPersists(t *testing.T) {
        e := newEnv(t)

        _, _, err := runCLI(t, e.args("run", "push", "hello"))
        require.NoError(t, err)
        out, _, err := runCLI(t, e.args("run", "push", "world"))
        require.NoError(t, err)

        v := decodeStack(t, out)
        require.Equal(t, "push", v.Command)
        require.Equal(t, []string{"world", "hello"}, summaries(v))

        out, _, err = runCLI(t, e.args("ls"))
        require.NoError(t, err)
        require.Equal(t, []string{"world", "hello"}, summaries(decodeStack(t, out)))
}

func TestRun_FlagsAfterLineBelongToCommand(t *testing.T) {
        e := newEnv(t)
        for _, line := range [][]string{{"push", "c"}, {"push", "b"}, {"push", "a"}} {
                _, _, err := runCLI(t, e.args(append([]string{"run"}, line...)...))
                require.NoError(t, err)
        }
        out, _, err := runCLI(t, e.args("run", "rot", "-n", "-1"))
        require.NoError(t, err)
        require.Equal(t, []string{"c", "a", "b"}, summaries(decodeStack(t, out)))
}

func TestRun_UnmatchedLineIsNoOp(t *testing.T) {
        e := newEnv(t)
        _, _, err := runCLI(t, e.args("run", "push", "x"))
        require.NoError(t, err)

        out, _, err := runCLI(t, e.args("run", "frobnicate"))
        require.NoError(t, err)
        v := decodeStack(t, out)
        require.Equal(t, "", v.Command)
        require.Equal(t, []string{"x"}, summaries(v))
}

func TestRun_ErrorIsReportedAndStateKept(t *testing.T) {
        e := newEnv(t)
        _, stderr, err := runCLI(t, e.args("run", "pop"))
        require.Error(t, err)
        require.Contains(t, string(stderr), "out of range")

        _, err = os.Stat(e.db)
        require.True(t, os.IsNotExist(err), "failed command must not write the store")
}

func TestShow_RawMarkdown(t *testing.T) {
        e := newEnv(t)
        for _, line := range []string{"b", "a"} {
                _, _, err := runCLI(t, e.args("run", "push", line))
                require.NoError(t, err)
        }
        _, _, err := runCLI(t, e.args("run", "chunk", "2"))
        require.NoError(t, err)

        out, _, err := runCLI(t, []string{"--db", e.db, "--config", e.config, "show", "0", "--raw"})
        require.NoError(t, err)
        require.Equal(t, "# 0 `./`\n\n- a\n- b\n", string(out))

        _, _, err = runCLI(t, e.args("show", "3"))
        require.Error(t, err)
}

func TestMigrate_LegacyListWritesBackup(t *testing.T) {
        e := newEnv(t)
        require.NoError(t, os.WriteFile(e.db, []byte(`["a", ["b", "c"], "d"]`), 0o644))

        out, _, err := runCLI(t, e.args("migrate"))
        require.NoError(t, err)

        var v migrateView
        require.NoError(t, json.Unmarshal(out, &v))
        require.Equal(t, 2, v.Version)
        require.Len(t, v.Backups, 1)
        require.True(t, strings.HasPrefix(filepath.Base(v.Backups[0]), ".mmintdb.bak"))

        out, _, err = runCLI(t, e.args("ls"))
        require.NoError(t, err)
        require.Len(t, decodeStack(t, out).Stack, 3)
}

func TestHistory_ListsAppliedCommands(t *testing.T) {
        e := newEnv(t)
        for _, args := range [][]string{{"run", "push", "a"}, {"run", "nothing", "here"}, {"run", "cp"}} {
                _, _, err := runCLI(t, e.args(args...))
                require.NoError(t, err)
        }

        out, _, err := runCLI(t, e.args("history", "--limit", "5"))
        require.NoError(t, err)
        var v historyView
        require.NoError(t, json.Unmarshal(out, &v))
        require.Len(t, v.Entries, 2)
        require.Equal(t, "cp", v.Entries[0].Command)
        require.Equal(t, 2, v.Entries[0].StackSize)
}

func TestHistory_Disabled(t *testing.T) {
        e := newEnv(t)
        require.NoError(t, os.WriteFile(e.config, []byte("history: off\n"), 0o644))
        _, stderr, err := runCLI(t, e.args("history"))
        require.Error(t, err)
        require.Contains(t, string(stderr), "history is disabled")
}

func TestConfig_InitRefusesOverwrite(t *testing.T) {
        e := newEnv(t)
        _, _, err := runCLI(t, e.args("config", "init"))
        require.NoError(t, err)
        b, err := os.ReadFile(e.config)
        require.NoError(t, err)
        require.Contains(t, string(b), "summaryLimit: 3")

        _, _, err = runCLI(t, e.args("config", "init"))
        require.Error(t, err)
        _, _, err = runCLI(t, e.args("config", "init", "--force"))
        require.NoError(t, err)
}

func TestConfig_InvalidFileIsRejected(t *testing.T) {
        e := newEnv(t)
        require.NoError(t, os.WriteFile(e.config, []byte("summaryLimit: -2\n"), 0o644))
        _, _, err := runCLI(t, e.args("ls"))
        require.Error(t, err)
}

func TestDocs_ListsTopics(t *testing.T) {
        e := newEnv(t)
        out, _, err := runCLI(t, e.args("docs"))
        require.NoError(t, err)
        var v docsView
        require.NoError(t, json.Unmarshal(out, &v))
        require.Contains(t, v.Topics, "commands")

        _, _, err = runCLI(t, e.args("docs", "nope"))
        require.Error(t, err)
}
