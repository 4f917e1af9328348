package render

import (
        "os"
        "strconv"
        "strings"
        "sync"

        "mmint-cli/internal/pathutil"
        "mmint-cli/internal/store"

        "github.com/charmbracelet/glamour"
        "github.com/charmbracelet/glamour/ansi"
        "github.com/charmbracelet/glamour/styles"
        "github.com/charmbracelet/lipgloss"
        "github.com/muesli/termenv"
)

var (
        mdRendererMu sync.Mutex
        // Keyed by style + wrap width. WithAutoStyle can block on terminal
        // queries, so styles are picked explicitly.
        mdRenderers = map[string]*glamour.TermRenderer{}
)

// ItemMarkdown describes the item at stack index i as markdown: a heading
// with the index and path, then the note text or the chunk as a nested list.
func ItemMarkdown(db *store.DB, i int) string {
        id := db.Stack[i]
        var b strings.Builder
        b.WriteString("# ")
        b.WriteString(strconv.Itoa(i))
        it, ok := db.FindItem(id)
        if ok {
                b.WriteString(" `" + pathutil.Display(db.ActivePath, it.Path) + "`")
        }
        b.WriteString("\n\n")

        if !ok || !it.IsChunk() {
                b.WriteString(Summary(db, id, Unlimited))
                b.WriteString("\n")
                return b.String()
        }
        for _, l := range Flatten(db, id) {
                b.WriteString(strings.Repeat(indent, l.Depth-1))
                b.WriteString("- ")
                b.WriteString(l.Text)
                b.WriteString("\n")
        }
        return b.String()
}

// Markdown renders md for the terminal, falling back to the raw text when
// rendering fails.
func Markdown(md string, width int) string {
        md = strings.TrimSpace(md)
        if md == "" {
                return ""
        }
        if width < 10 {
                width = 10
        }

        style := markdownStyle()
        key := style + ":" + strconv.Itoa(width)

        mdRendererMu.Lock()
        r := mdRenderers[key]
        mdRendererMu.Unlock()

        if r == nil {
                rr, err := glamour.NewTermRenderer(
                        glamour.WithStyles(markdownStyleConfig(style)),
                        glamour.WithWordWrap(width),
                )
                if err != nil {
                        return md
                }
                mdRendererMu.Lock()
                if existing := mdRenderers[key]; existing != nil {
                        r = existing
                } else {
                        mdRenderers[key] = rr
                        r = rr
                }
                mdRendererMu.Unlock()
        }

        out, err := r.Render(md)
        if err != nil {
                return md
        }
        return strings.TrimRight(out, "\n")
}

func markdownStyleConfig(name string) ansi.StyleConfig {
        switch name {
        case styles.LightStyle:
                return styles.LightStyleConfig
        case styles.DarkStyle:
                return styles.DarkStyleConfig
        default:
                return styles.NoTTYStyleConfig
        }
}

// markdownStyle honors MMINT_MD_STYLE (light|dark|notty); otherwise plain
// output without colors and dark styling with them.
func markdownStyle() string {
        switch v := strings.ToLower(strings.TrimSpace(os.Getenv("MMINT_MD_STYLE"))); v {
        case styles.LightStyle, styles.DarkStyle, styles.NoTTYStyle:
                return v
        }
        if lipgloss.ColorProfile() == termenv.Ascii {
                return styles.NoTTYStyle
        }
        return styles.DarkStyle
}
