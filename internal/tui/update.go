package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/facilityos/equiptrack/internal/logger"
	"github.com/facilityos/equiptrack/internal/notify"
	"github.com/facilityos/equiptrack/internal/tui/components/equipmentlist"
	"github.com/facilityos/equiptrack/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		h, v := docStyle.GetFrameSize()
		listHeight := msg.Height - 5 // header + notice + help
		m.equipmentList.SetSize(msg.Width-h, listHeight-v)
		m.historyView.SetSize(msg.Width-h, listHeight-v)
		return m, nil

	case equipmentListMsg:
		// A refresh issued later supersedes this one; drop stale results
		// instead of writing them into state.
		if msg.seq != m.refreshSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			logger.Error("Failed to load equipment", "error", msg.err)
			m.notify(notify.KindError, "Failed to load equipment")
			return m, nil
		}
		m.collection = msg.items
		m.equipmentList.SetEquipment(msg.items)
		return m, nil

	case equipmentSavedMsg:
		m.submitting = false
		if msg.err != nil {
			// Keep the form populated so the input can be corrected
			m.formError = msg.err.Error()
			m.notify(notify.KindError, msg.err.Error())
			if m.form != nil {
				m.form.State = huh.StateNormal
			}
			return m, nil
		}
		if msg.created {
			m.notify(notify.KindSuccess, "Equipment added")
		} else {
			m.notify(notify.KindSuccess, "Equipment updated")
		}
		m.closeModal()
		return m, m.startRefresh()

	case equipmentDeletedMsg:
		if msg.err != nil {
			logger.Error("Failed to delete equipment", "error", msg.err)
			m.notify(notify.KindError, "Failed to delete equipment")
			return m, nil
		}
		m.notify(notify.KindSuccess, "Equipment deleted")
		return m, m.startRefresh()

	case maintenanceLoggedMsg:
		m.submitting = false
		if msg.err != nil {
			m.formError = msg.err.Error()
			m.notify(notify.KindError, msg.err.Error())
			if m.form != nil {
				m.form.State = huh.StateNormal
			}
			return m, nil
		}
		m.notify(notify.KindSuccess, "Maintenance logged successfully")
		m.closeModal()
		return m, m.startRefresh()

	case historyLoadedMsg:
		// Discard results for a closed or superseded history view
		if msg.seq != m.historySeq || m.selection.Kind() != SelectionViewingHistory {
			return m, nil
		}
		if target := m.selection.Target(); target == nil || target.ID != msg.equipmentID {
			return m, nil
		}
		if msg.err != nil {
			logger.Error("Failed to load maintenance history", "equipment_id", msg.equipmentID, "error", msg.err)
			m.historyView.SetFailed()
			return m, nil
		}
		m.historyView.SetEntries(msg.entries)
		return m, nil

	case equipmentlist.AddMsg:
		return m, m.openCreate()

	case equipmentlist.EditMsg:
		return m, m.openEdit(msg.Item)

	case equipmentlist.MaintainMsg:
		return m, m.openMaintenance(msg.Item)

	case equipmentlist.HistoryMsg:
		return m, m.openHistory(msg.Item)

	case equipmentlist.DeleteMsg:
		m.requestDelete(msg.Item)
		return m, nil

	case equipmentlist.RefreshMsg:
		return m, m.startRefresh()
	}

	// Delete confirmation: a declined prompt is a no-op with no network
	// call.
	if m.confirming != nil {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				id := m.confirming.ID
				m.confirming = nil
				return m, deleteEquipment(m.svc, id)
			case "n", "N", "esc", "q":
				m.confirming = nil
			}
		}
		return m, nil
	}

	switch m.selection.Kind() {
	case SelectionCreating, SelectionEditing:
		return m.updateEquipmentForm(msg)
	case SelectionLoggingMaintenance:
		return m.updateMaintenanceForm(msg)
	case SelectionViewingHistory:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
				m.closeModal()
			}
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.equipmentList, cmd = m.equipmentList.Update(msg)
	return m, cmd
}

func (m Model) updateEquipmentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyEsc {
			m.closeModal()
			return m, nil
		}
		if m.submitting && key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	if m.submitting {
		// Gate resubmission until the in-flight request resolves
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		in := m.equipmentForm.Input()
		if fe := validation.ValidateEquipment(in); !fe.Valid() {
			m.formError = fe.Summary()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.submitting = true
		return m, tea.Batch(cmd, saveEquipment(m.svc, m.selection.Target(), in))
	case huh.StateAborted:
		m.closeModal()
	}
	return m, cmd
}

func (m Model) updateMaintenanceForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyEsc {
			m.closeModal()
			return m, nil
		}
		if m.submitting && key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		target := m.selection.Target()
		if target == nil {
			m.closeModal()
			return m, cmd
		}
		in := m.maintenanceForm.Input(target.ID)
		if fe := validation.ValidateMaintenance(in); !fe.Valid() {
			m.formError = fe.Summary()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.submitting = true
		return m, tea.Batch(cmd, logMaintenance(m.svc, in))
	case huh.StateAborted:
		m.closeModal()
	}
	return m, cmd
}
