package main

import (
        "os"
        "strconv"
        "strings"

        "mmint-cli/internal/cli"

        _ "github.com/joho/godotenv/autoload"
)

// Persistent flags that take a separate value argument.
var valueFlags = map[string]bool{
        "--db":     true,
        "--config": true,
        "--format": true,
}

func isIndex(s string) bool {
        n, err := strconv.Atoi(s)
        return err == nil && n >= 0
}

// rewriteShowArgs turns `mmint [flags] <index>` into `mmint [flags] show <index>`.
// Cobra takes the first positional token as a subcommand name, so argv is
// rewritten before parsing.
func rewriteShowArgs(argv []string) []string {
        for i := 1; i < len(argv); i++ {
                a := strings.TrimSpace(argv[i])
                switch {
                case a == "":
                        continue
                case a == "--":
                        if i+1 < len(argv) && isIndex(argv[i+1]) {
                                return insertShow(argv, i+1)
                        }
                        return argv
                case strings.HasPrefix(a, "-"):
                        if valueFlags[a] {
                                i++
                        }
                        continue
                case isIndex(a):
                        return insertShow(argv, i)
                default:
                        return argv
                }
        }
        return argv
}

func insertShow(argv []string, i int) []string {
        out := make([]string, 0, len(argv)+1)
        out = append(out, argv[:i]...)
        out = append(out, "show")
        return append(out, argv[i:]...)
}

func main() {
        os.Args = rewriteShowArgs(os.Args)

        cmd := cli.NewRootCmd()
        if err := cmd.Execute(); err != nil {
                os.Exit(1)
        }
}
