// Package ui renders short-lived notifications below the main terminal view.
package ui

import (
	"strings"
	"time"

	"github.com/animeflow/animeflow/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Model holds the notification currently shown, if any.
type Model struct {
	notification string
	id           int
}

// NotificationMsg carries a new notification into the event loop.
type NotificationMsg string

type clearMsg struct {
	id int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

// Update consumes notification messages and returns the command that clears
// the notification once its lifetime is over. A newer notification is never
// cleared by the timer of an older one.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.id++
		m.notification = string(msg)
		id := m.id
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return clearMsg{id: id}
		})
	case clearMsg:
		if msg.id == m.id {
			m.notification = ""
		}
	}
	return nil
}

// Notification returns the text currently shown.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
