package tui

import (
        "context"
        "strings"

        "mmint-cli/internal/render"
        "mmint-cli/internal/session"

        "github.com/charmbracelet/bubbles/textinput"
        tea "github.com/charmbracelet/bubbletea"
)

type model struct {
        sess     *session.Session
        renderer render.Renderer

        input textinput.Model

        status    string
        statusErr bool

        width  int
        height int
}

func newModel(sess *session.Session, summaryLimit int) model {
        in := textinput.New()
        in.Placeholder = "push <text>, pop, chunk <n>, snooze <n><unit>, cd <path>…"
        in.CharLimit = 0
        in.Focus()

        m := model{
                sess:     sess,
                renderer: render.Renderer{SummaryLimit: summaryLimit},
                input:    in,
        }
        m.syncPrompt()
        return m
}

func (m *model) syncPrompt() {
        m.input.Prompt = render.Prompt(m.sess.DB().ActivePath)
}

func (m model) Init() tea.Cmd {
        return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
        switch msg := msg.(type) {
        case tea.WindowSizeMsg:
                m.width = msg.Width
                m.height = msg.Height
                m.renderer.Width = msg.Width
                m.input.Width = max(10, msg.Width-len(m.sess.DB().ActivePath)-3)
                return m, nil

        case tea.KeyMsg:
                switch msg.Type {
                case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
                        return m, tea.Quit
                case tea.KeyEnter:
                        m.submit(m.input.Value())
                        m.input.Reset()
                        m.syncPrompt()
                        return m, nil
                }
        }

        var cmd tea.Cmd
        m.input, cmd = m.input.Update(msg)
        return m, cmd
}

// submit runs one cycle; failures only reach the status line.
func (m *model) submit(line string) {
        out, err := m.sess.Exec(context.Background(), line)
        switch {
        case err != nil:
                m.status = err.Error()
                m.statusErr = true
        case out.Command == "" && strings.TrimSpace(line) != "":
                m.status = "no command matched"
                m.statusErr = false
        default:
                m.status = ""
                m.statusErr = false
        }
}

func (m model) View() string {
        var b strings.Builder
        if stack := m.renderer.Stack(m.sess.DB()); stack != "" {
                b.WriteString(stack)
                b.WriteString("\n")
        }
        if m.status != "" {
                if m.statusErr {
                        b.WriteString(render.Error(m.status))
                } else {
                        b.WriteString(render.Muted(m.status))
                }
                b.WriteString("\n")
        }
        b.WriteString(m.input.View())
        return b.String()
}
