package handlers

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/facilityos/equiptrack/internal/models"
	"github.com/facilityos/equiptrack/internal/validation"
)

// EquipmentFormModel holds the equipment form's field state. The same
// model backs create and edit; edit prefills it from an existing record.
type EquipmentFormModel struct {
	Name            string
	TypeName        string
	Status          models.Status
	LastCleanedDate string
}

// Input converts the form fields to the API payload
func (fm *EquipmentFormModel) Input() models.EquipmentInput {
	return models.EquipmentInput{
		Name:            strings.TrimSpace(fm.Name),
		TypeName:        strings.TrimSpace(fm.TypeName),
		Status:          fm.Status,
		LastCleanedDate: strings.TrimSpace(fm.LastCleanedDate),
	}
}

// MaintenanceFormModel holds the maintenance form's field state. The
// equipment id is bound by the board, never collected here.
type MaintenanceFormModel struct {
	MaintenanceDate string
	Notes           string
	PerformedBy     string
}

// Input converts the form fields to the API payload for the given
// equipment id.
func (fm *MaintenanceFormModel) Input(equipmentID int) models.MaintenanceInput {
	return models.MaintenanceInput{
		EquipmentID:     equipmentID,
		MaintenanceDate: strings.TrimSpace(fm.MaintenanceDate),
		Notes:           strings.TrimSpace(fm.Notes),
		PerformedBy:     strings.TrimSpace(fm.PerformedBy),
	}
}

func required(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

func requiredDate(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		if !validation.ValidDate(s) {
			return errors.New("use YYYY-MM-DD")
		}
		return nil
	}
}

// NewEquipmentForm creates the create/edit equipment form
func NewEquipmentForm(fm *EquipmentFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(required("Name is required")),
			huh.NewInput().
				Title("Type").
				Value(&fm.TypeName).
				Validate(required("Type is required")),
			huh.NewSelect[models.Status]().
				Title("Status").
				Options(
					huh.NewOption(models.StatusActive.Label(), models.StatusActive),
					huh.NewOption(models.StatusInactive.Label(), models.StatusInactive),
					huh.NewOption(models.StatusUnderMaintenance.Label(), models.StatusUnderMaintenance),
				).
				Value(&fm.Status),
			huh.NewInput().
				Title("Last Cleaned (YYYY-MM-DD)").
				Value(&fm.LastCleanedDate).
				Validate(requiredDate("Please select a date")),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewMaintenanceForm creates the maintenance logging form
func NewMaintenanceForm(fm *MaintenanceFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Maintenance Date (YYYY-MM-DD)").
				Value(&fm.MaintenanceDate).
				Validate(requiredDate("Please select a date")),
			huh.NewInput().
				Title("Notes").
				Placeholder("Maintenance details").
				Value(&fm.Notes).
				Validate(required("Please add some notes")),
			huh.NewInput().
				Title("Performed By").
				Placeholder("Name of technician").
				Value(&fm.PerformedBy).
				Validate(required("Please specify who performed it")),
		),
	).WithTheme(huh.ThemeDracula())
}
