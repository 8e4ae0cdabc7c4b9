package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/facilityos/equiptrack/internal/models"
	"github.com/facilityos/equiptrack/internal/notify"
	"github.com/facilityos/equiptrack/internal/tui/components/equipmentlist"
	"github.com/facilityos/equiptrack/internal/tui/components/history"
	"github.com/facilityos/equiptrack/internal/tui/handlers"
)

// Service is the remote equipment API as the board consumes it
type Service interface {
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	CreateEquipment(ctx context.Context, in models.EquipmentInput) (models.Equipment, error)
	UpdateEquipment(ctx context.Context, id int, in models.EquipmentInput) (models.Equipment, error)
	DeleteEquipment(ctx context.Context, id int) error
	LogMaintenance(ctx context.Context, in models.MaintenanceInput) (models.MaintenanceEntry, error)
	MaintenanceHistory(ctx context.Context, equipmentID int) ([]models.MaintenanceEntry, error)
}

// Model is the equipment board. It is the single owner of the equipment
// collection and the modal selection; child components only receive
// values and report back through messages.
type Model struct {
	svc  Service
	sink notify.Sink

	equipmentList equipmentlist.Model
	historyView   history.Model
	keys          KeyMap
	help          help.Model

	collection []models.Equipment
	loading    bool
	refreshSeq int
	historySeq int

	selection  Selection
	confirming *models.Equipment

	form            *huh.Form
	equipmentForm   *handlers.EquipmentFormModel
	maintenanceForm *handlers.MaintenanceFormModel
	formError       string
	submitting      bool

	notice     string
	noticeKind notify.Kind

	width    int
	height   int
	quitting bool
}

// NewModel creates the board. sink may be nil; notifications then only
// show on the board's status line.
func NewModel(svc Service, sink notify.Sink) Model {
	return Model{
		svc:           svc,
		sink:          sink,
		equipmentList: equipmentlist.New(nil, 0, 0),
		historyView:   history.New(0, 0),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		loading:       true,
		refreshSeq:    1,
		selection:     NoSelection(),
	}
}

func (m Model) Init() tea.Cmd {
	return fetchEquipment(m.svc, m.refreshSeq)
}

// Collection returns the board's current view of the equipment list
func (m Model) Collection() []models.Equipment {
	return m.collection
}

// Selection returns the active modal interaction
func (m Model) Selection() Selection {
	return m.selection
}

// ConfirmingDelete returns the item awaiting delete confirmation, if any
func (m Model) ConfirmingDelete() *models.Equipment {
	return m.confirming
}

// Loading reports whether the initial load is still unresolved
func (m Model) Loading() bool {
	return m.loading
}

// notify records a notice for the status line and forwards it to the
// injected sink.
func (m *Model) notify(kind notify.Kind, message string) {
	m.notice = message
	m.noticeKind = kind
	if m.sink != nil {
		m.sink.Notify(kind, message)
	}
}

// closeModal clears the modal selection and all form state. In-flight
// history fetches are invalidated so a late result cannot write into a
// closed view.
func (m *Model) closeModal() {
	m.selection = NoSelection()
	m.form = nil
	m.equipmentForm = nil
	m.maintenanceForm = nil
	m.formError = ""
	m.submitting = false
	m.historySeq++
}

// startRefresh issues a wholesale re-fetch of the collection. Results
// from refreshes issued earlier are discarded on arrival.
func (m *Model) startRefresh() tea.Cmd {
	m.refreshSeq++
	return fetchEquipment(m.svc, m.refreshSeq)
}

func (m *Model) openCreate() tea.Cmd {
	m.confirming = nil
	m.equipmentForm = &handlers.EquipmentFormModel{
		Status:          models.StatusActive,
		LastCleanedDate: models.Today(),
	}
	m.maintenanceForm = nil
	m.form = handlers.NewEquipmentForm(m.equipmentForm)
	m.formError = ""
	m.selection = Creating()
	return m.form.Init()
}

func (m *Model) openEdit(item models.Equipment) tea.Cmd {
	m.confirming = nil
	in := item.Input()
	m.equipmentForm = &handlers.EquipmentFormModel{
		Name:            in.Name,
		TypeName:        in.TypeName,
		Status:          in.Status,
		LastCleanedDate: in.LastCleanedDate,
	}
	m.maintenanceForm = nil
	m.form = handlers.NewEquipmentForm(m.equipmentForm)
	m.formError = ""
	m.selection = Editing(item)
	return m.form.Init()
}

func (m *Model) openMaintenance(item models.Equipment) tea.Cmd {
	m.confirming = nil
	m.maintenanceForm = &handlers.MaintenanceFormModel{
		MaintenanceDate: models.Today(),
	}
	m.equipmentForm = nil
	m.form = handlers.NewMaintenanceForm(m.maintenanceForm)
	m.formError = ""
	m.selection = LoggingMaintenance(item)
	return m.form.Init()
}

func (m *Model) openHistory(item models.Equipment) tea.Cmd {
	m.confirming = nil
	m.form = nil
	m.equipmentForm = nil
	m.maintenanceForm = nil
	m.formError = ""
	m.selection = ViewingHistory(item)
	m.historySeq++
	m.historyView.SetLoading()
	return fetchHistory(m.svc, m.historySeq, item.ID)
}

// requestDelete opens the confirmation prompt. No network call happens
// until the operator confirms.
func (m *Model) requestDelete(item models.Equipment) {
	m.closeModal()
	m.confirming = &item
}

func (m Model) ShortHelp() []key.Binding {
	if m.selection.Active() || m.confirming != nil {
		return []key.Binding{m.keys.Back, m.keys.Quit}
	}
	lk := equipmentlist.DefaultKeyMap()
	return []key.Binding{lk.Add, lk.Edit, lk.Delete, lk.Maintain, lk.History, m.keys.Help, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	lk := equipmentlist.DefaultKeyMap()
	return [][]key.Binding{
		{lk.Add, lk.Edit, lk.Delete},
		{lk.Maintain, lk.History, lk.Refresh},
		{m.keys.Back, m.keys.Help, m.keys.Quit},
	}
}
