package main

import (
        "reflect"
        "testing"
)

func TestRewriteShowArgs(t *testing.T) {
        t.Parallel()

        tests := []struct {
                name string
                in   []string
                want []string
        }{
                {
                        name: "no args",
                        in:   []string{"mmint"},
                        want: []string{"mmint"},
                },
                {
                        name: "index first token",
                        in:   []string{"mmint", "2"},
                        want: []string{"mmint", "show", "2"},
                },
                {
                        name: "index after value flag",
                        in:   []string{"mmint", "--db", "./notes.db", "0"},
                        want: []string{"mmint", "--db", "./notes.db", "show", "0"},
                },
                {
                        name: "index after equals flag",
                        in:   []string{"mmint", "--db=./7", "1"},
                        want: []string{"mmint", "--db=./7", "show", "1"},
                },
                {
                        name: "index after bool flag",
                        in:   []string{"mmint", "--pretty", "3"},
                        want: []string{"mmint", "--pretty", "show", "3"},
                },
                {
                        name: "index after double dash",
                        in:   []string{"mmint", "--", "4"},
                        want: []string{"mmint", "--", "show", "4"},
                },
                {
                        name: "value flag argument that looks like an index",
                        in:   []string{"mmint", "--format", "json", "ls"},
                        want: []string{"mmint", "--format", "json", "ls"},
                },
                {
                        name: "subcommand not rewritten",
                        in:   []string{"mmint", "run", "pop", "1"},
                        want: []string{"mmint", "run", "pop", "1"},
                },
                {
                        name: "negative number not rewritten",
                        in:   []string{"mmint", "run", "-1"},
                        want: []string{"mmint", "run", "-1"},
                },
        }

        for _, tt := range tests {
                tt := tt
                t.Run(tt.name, func(t *testing.T) {
                        t.Parallel()
                        got := rewriteShowArgs(append([]string(nil), tt.in...))
                        if !reflect.DeepEqual(got, tt.want) {
                                t.Fatalf("got %#v, want %#v", got, tt.want)
                        }
                })
        }
}
