package render

import (
        "os"
        "strconv"
        "strings"

        "mmint-cli/internal/pathutil"
        "mmint-cli/internal/store"

        "github.com/charmbracelet/lipgloss"
        xansi "github.com/charmbracelet/x/ansi"
        "github.com/muesli/termenv"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
        return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
        styleIndex  = lipgloss.NewStyle().Foreground(ac("160", "203"))
        stylePath   = lipgloss.NewStyle().Foreground(ac("136", "221"))
        styleBody   = lipgloss.NewStyle().Foreground(ac("235", "252"))
        stylePrompt = lipgloss.NewStyle().Foreground(ac("28", "78")).Bold(true)
        styleError  = lipgloss.NewStyle().Foreground(ac("160", "203"))
        styleMuted  = lipgloss.NewStyle().Foreground(ac("240", "243"))
)

// ApplyColorProfile picks the lipgloss color profile for terminal output.
// NO_COLOR forces plain text.
func ApplyColorProfile() {
        if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
                lipgloss.SetColorProfile(termenv.Ascii)
                return
        }
        profile := termenv.ColorProfile()
        term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
        colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
        if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
                if profile != termenv.Ascii {
                        profile = termenv.TrueColor
                }
        } else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
                profile = termenv.ANSI256
        }
        lipgloss.SetColorProfile(profile)
}

// Renderer draws the visible stack.
type Renderer struct {
        // SummaryLimit caps chunk summaries for every entry but the top one.
        SummaryLimit int

        // Width truncates each output line; 0 disables truncation.
        Width int
}

// Row renders stack entry i as "<i> ./<path>: <summary>". Chunk summaries start
// on the next line instead.
func (r Renderer) Row(db *store.DB, i int) string {
        id := db.Stack[i]
        limit := r.SummaryLimit
        if i == 0 {
                limit = Unlimited
        }

        path := pathutil.Display(db.ActivePath, db.ActivePath)
        if it, ok := db.FindItem(id); ok {
                path = pathutil.Display(db.ActivePath, it.Path)
        }
        sep := " "
        if it, ok := db.FindItem(id); ok && it.IsChunk() {
                sep = "\n"
        }

        head := styleIndex.Render(strconv.Itoa(i)) + " " + stylePath.Render(path) + styleIndex.Render(":")
        return r.clip(head + sep + renderLines(styleBody, Summary(db, id, limit)))
}

// renderLines styles each line on its own so lipgloss does not pad the block.
func renderLines(st lipgloss.Style, s string) string {
        lines := strings.Split(s, "\n")
        for i, l := range lines {
                if l != "" {
                        lines[i] = st.Render(l)
                }
        }
        return strings.Join(lines, "\n")
}

// Stack renders every entry, bottom first, so the top sits right above the
// prompt.
func (r Renderer) Stack(db *store.DB) string {
        rows := make([]string, 0, len(db.Stack))
        for i := len(db.Stack) - 1; i >= 0; i-- {
                rows = append(rows, r.Row(db, i))
        }
        return strings.Join(rows, "\n")
}

// Prompt is the active path followed by ">".
func Prompt(activePath string) string {
        return stylePrompt.Render(activePath + ">")
}

func Error(msg string) string {
        return styleError.Render(msg)
}

func Muted(msg string) string {
        return styleMuted.Render(msg)
}

func (r Renderer) clip(s string) string {
        if r.Width <= 0 {
                return s
        }
        lines := strings.Split(s, "\n")
        for i, l := range lines {
                if xansi.StringWidth(l) > r.Width {
                        lines[i] = xansi.Truncate(l, r.Width, "…")
                }
        }
        return strings.Join(lines, "\n")
}
