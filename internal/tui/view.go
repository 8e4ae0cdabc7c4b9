package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/facilityos/equiptrack/internal/notify"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.confirming != nil:
		content = m.viewConfirmDelete()
	case m.selection.Kind() == SelectionCreating:
		content = m.viewForm("Add New Equipment")
	case m.selection.Kind() == SelectionEditing:
		content = m.viewForm("Edit Equipment")
	case m.selection.Kind() == SelectionLoggingMaintenance:
		content = m.viewForm(fmt.Sprintf("Log Maintenance: %s", m.targetName()))
	case m.selection.Kind() == SelectionViewingHistory:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render(fmt.Sprintf("Maintenance History: %s", m.targetName())),
			docStyle.Render(m.historyView.View()),
		)
	default:
		content = m.viewBoard()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Equipment Management"),
		m.viewNotice(),
		content,
		m.help.View(m),
	)
}

func (m Model) targetName() string {
	if t := m.selection.Target(); t != nil {
		return t.Name
	}
	return ""
}

func (m Model) viewNotice() string {
	if m.notice == "" {
		return ""
	}
	switch m.noticeKind {
	case notify.KindSuccess:
		return successNoticeStyle.Render("✓ " + m.notice)
	case notify.KindError:
		return errorNoticeStyle.Render("✗ " + m.notice)
	default:
		return infoNoticeStyle.Render(m.notice)
	}
}

func (m Model) viewBoard() string {
	if m.loading {
		return emptyStyle.Render("Loading equipment...")
	}
	if len(m.collection) == 0 {
		return emptyStyle.Render("No equipment found. Add some to get started.")
	}
	return docStyle.Render(m.equipmentList.View())
}

func (m Model) viewForm(title string) string {
	if m.form == nil {
		return ""
	}
	parts := []string{
		subtitleStyle.Render(title),
		m.form.View(),
	}
	if m.formError != "" {
		parts = append(parts, formErrorStyle.Render(m.formError))
	}
	if m.submitting {
		parts = append(parts, infoNoticeStyle.Render("Saving..."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if m.confirming != nil {
		name = m.confirming.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Are you sure you want to delete %q?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
