package cli

import (
        "fmt"
        "strings"

        "mmint-cli/internal/docs"
        "mmint-cli/internal/render"

        "github.com/spf13/cobra"
)

type docsView struct {
        Topics   []string `json:"topics,omitempty"`
        Topic    string   `json:"topic,omitempty"`
        Markdown string   `json:"markdown,omitempty"`

        text string
}

func (v docsView) Text() string { return v.text }

func newDocsCmd(app *App) *cobra.Command {
        var raw bool

        cmd := &cobra.Command{
                Use:   "docs [topic]",
                Short: "Show built-in help topics",
                Args:  cobra.MaximumNArgs(1),
                RunE: func(cmd *cobra.Command, args []string) error {
                        if len(args) == 0 {
                                topics := docs.Topics()
                                return writeOut(cmd, app, docsView{Topics: topics, text: strings.Join(topics, "\n")})
                        }

                        topic := args[0]
                        body, ok := docs.Get(topic)
                        if !ok {
                                return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `mmint docs` to list topics)", topic))
                        }
                        v := docsView{Topic: topic, Markdown: body, text: body}
                        if !raw {
                                v.text = render.Markdown(body, 80)
                        }
                        return writeOut(cmd, app, v)
                },
        }

        cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown in text mode")

        return cmd
}
