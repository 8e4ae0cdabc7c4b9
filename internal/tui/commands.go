package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/facilityos/equiptrack/internal/models"
)

type equipmentListMsg struct {
	seq   int
	items []models.Equipment
	err   error
}

type equipmentSavedMsg struct {
	created bool
	err     error
}

type equipmentDeletedMsg struct {
	err error
}

type maintenanceLoggedMsg struct {
	err error
}

type historyLoadedMsg struct {
	seq         int
	equipmentID int
	entries     []models.MaintenanceEntry
	err         error
}

func fetchEquipment(svc Service, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := svc.ListEquipment(context.Background())
		return equipmentListMsg{seq: seq, items: items, err: err}
	}
}

func saveEquipment(svc Service, target *models.Equipment, in models.EquipmentInput) tea.Cmd {
	return func() tea.Msg {
		var err error
		if target == nil {
			_, err = svc.CreateEquipment(context.Background(), in)
			return equipmentSavedMsg{created: true, err: err}
		}
		_, err = svc.UpdateEquipment(context.Background(), target.ID, in)
		return equipmentSavedMsg{created: false, err: err}
	}
}

func deleteEquipment(svc Service, id int) tea.Cmd {
	return func() tea.Msg {
		return equipmentDeletedMsg{err: svc.DeleteEquipment(context.Background(), id)}
	}
}

func logMaintenance(svc Service, in models.MaintenanceInput) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.LogMaintenance(context.Background(), in)
		return maintenanceLoggedMsg{err: err}
	}
}

func fetchHistory(svc Service, seq, equipmentID int) tea.Cmd {
	return func() tea.Msg {
		entries, err := svc.MaintenanceHistory(context.Background(), equipmentID)
		return historyLoadedMsg{seq: seq, equipmentID: equipmentID, entries: entries, err: err}
	}
}
