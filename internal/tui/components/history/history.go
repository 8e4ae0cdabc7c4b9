package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facilityos/equiptrack/internal/models"
)

var (
	dateStyle  = lipgloss.NewStyle().Bold(true)
	byStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Model is a read-only view over one equipment's maintenance entries.
// It exposes no mutation; empty results and fetch failures both render
// a neutral state instead of propagating an error.
type Model struct {
	entries []models.MaintenanceEntry
	loading bool
	failed  bool
	width   int
	height  int
}

func New(width, height int) Model {
	return Model{
		loading: true,
		width:   width,
		height:  height,
	}
}

// SetLoading resets the view while a fetch is in flight
func (m *Model) SetLoading() {
	m.loading = true
	m.failed = false
	m.entries = nil
}

// SetEntries replaces the rendered entries
func (m *Model) SetEntries(entries []models.MaintenanceEntry) {
	m.loading = false
	m.failed = false
	m.entries = entries
}

// SetFailed switches the view to its neutral failure state
func (m *Model) SetFailed() {
	m.loading = false
	m.failed = true
	m.entries = nil
}

// Entries returns the currently rendered entries
func (m Model) Entries() []models.MaintenanceEntry {
	return m.entries
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	if m.loading {
		return emptyStyle.Render("Loading maintenance history...")
	}
	if m.failed {
		return errStyle.Render("Could not load maintenance history.")
	}
	if len(m.entries) == 0 {
		return emptyStyle.Render("No maintenance recorded for this equipment.")
	}

	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(dateStyle.Render(models.FormatDate(e.MaintenanceDate)))
		b.WriteString(byStyle.Render(fmt.Sprintf("  by %s", e.PerformedBy)))
		b.WriteString("\n  ")
		b.WriteString(e.Notes)
	}
	return b.String()
}
