package equipmentlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/facilityos/equiptrack/internal/models"
)

type AddMsg struct{}

type EditMsg struct {
	Item models.Equipment
}

type DeleteMsg struct {
	Item models.Equipment
}

type MaintainMsg struct {
	Item models.Equipment
}

type HistoryMsg struct {
	Item models.Equipment
}

type RefreshMsg struct{}

var (
	activeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	inactiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	maintenanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// statusBadge renders a colored status tag. Unknown statuses render
// unstyled rather than failing.
func statusBadge(s models.Status) string {
	switch s {
	case models.StatusActive:
		return activeStyle.Render(s.Label())
	case models.StatusInactive:
		return inactiveStyle.Render(s.Label())
	case models.StatusUnderMaintenance:
		return maintenanceStyle.Render(s.Label())
	default:
		return s.Label()
	}
}

type Item struct {
	Equipment models.Equipment
}

func (i Item) Title() string {
	return i.Equipment.Name
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s · Last cleaned %s",
		i.Equipment.TypeName,
		statusBadge(i.Equipment.Status),
		models.FormatDate(i.Equipment.LastCleanedDate),
	)
}

func (i Item) FilterValue() string { return i.Equipment.Name }

type KeyMap struct {
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Maintain key.Binding
	History  key.Binding
	Refresh  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Maintain: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "log maintenance"),
		),
		History: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view history"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []models.Equipment, width, height int) Model {
	l := list.New(toItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Equipment"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Maintain, keys.History}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Maintain, keys.History, keys.Refresh}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func toItems(items []models.Equipment) []list.Item {
	out := make([]list.Item, len(items))
	for i, e := range items {
		out[i] = Item{Equipment: e}
	}
	return out
}

// SetEquipment replaces the rendered collection wholesale, preserving
// the given order.
func (m *Model) SetEquipment(items []models.Equipment) {
	m.list.SetItems(toItems(items))
}

// Selected returns the equipment under the cursor, if any
func (m Model) Selected() (models.Equipment, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Equipment, true
	}
	return models.Equipment{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't match if we're filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditMsg{Item: item.Equipment} }
			}
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMsg{Item: item.Equipment} }
			}
		case key.Matches(msg, m.keys.Maintain):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return MaintainMsg{Item: item.Equipment} }
			}
		case key.Matches(msg, m.keys.History):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return HistoryMsg{Item: item.Equipment} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
