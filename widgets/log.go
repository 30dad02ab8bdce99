package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EventLog is a scrolling list of display lines capped at a fixed length.
// New entries push the oldest out, so the view always shows the most
// recent traffic.
type EventLog struct {
	max     int
	entries []string
	style   lipgloss.Style
	title   string
}

// NewEventLog builds a log panel keeping at most max entries.
func NewEventLog(title string, max int, color lipgloss.Color) *EventLog {
	return &EventLog{
		max:   max,
		style: lipgloss.NewStyle().Foreground(color),
		title: title,
	}
}

// Add appends an entry, evicting the oldest past the cap.
func (l *EventLog) Add(entry string) {
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
}

// Clear drops all entries.
func (l *EventLog) Clear() {
	l.entries = nil
}

// View renders the newest height entries, oldest first.
func (l *EventLog) View(height int) string {
	var out strings.Builder
	out.WriteString(l.style.Bold(true).Render(l.title))
	out.WriteString("\n")

	start := 0
	if len(l.entries) > height {
		start = len(l.entries) - height
	}
	for _, entry := range l.entries[start:] {
		out.WriteString(l.style.Render(entry))
		out.WriteString("\n")
	}
	return out.String()
}
