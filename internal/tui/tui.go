package tui

import (
        "mmint-cli/internal/render"
        "mmint-cli/internal/session"

        tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive loop on an opened session.
func Run(sess *session.Session, summaryLimit int) error {
        render.ApplyColorProfile()
        m := newModel(sess, summaryLimit)
        _, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
        return err
}
