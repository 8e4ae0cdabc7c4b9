package models

import (
	"time"

	"github.com/facilityos/equiptrack/internal/constants"
)

// Status is the operational state of a piece of equipment
type Status string

const (
	StatusActive           Status = "Active"
	StatusInactive         Status = "Inactive"
	StatusUnderMaintenance Status = "Under Maintenance"
)

// AllStatuses lists the statuses the server accepts, in display order
func AllStatuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusUnderMaintenance}
}

// Known reports whether s is one of the accepted statuses. The server is
// the source of truth for status values, so unknown strings are rendered
// as-is rather than rejected.
func (s Status) Known() bool {
	switch s {
	case StatusActive, StatusInactive, StatusUnderMaintenance:
		return true
	}
	return false
}

// Label returns the display tag for a status. Unrecognized values fall
// back to the raw string so the view never breaks on unexpected data.
func (s Status) Label() string {
	return string(s)
}

// Equipment is one tracked physical asset, mirroring server state as of
// the last successful fetch. IDs are server-assigned.
type Equipment struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	TypeName        string `json:"type_name"`
	Status          Status `json:"status"`
	LastCleanedDate string `json:"last_cleaned_date"`
}

// EquipmentInput is the writable field set for create and update calls
type EquipmentInput struct {
	Name            string `json:"name"`
	TypeName        string `json:"type_name"`
	Status          Status `json:"status"`
	LastCleanedDate string `json:"last_cleaned_date"`
}

// Input returns the writable fields of an existing record, used to
// prefill the edit form.
func (e Equipment) Input() EquipmentInput {
	return EquipmentInput{
		Name:            e.Name,
		TypeName:        e.TypeName,
		Status:          e.Status,
		LastCleanedDate: e.LastCleanedDate,
	}
}

// FormatDate renders an ISO date for display. Unparseable input is
// returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse(constants.DateFormat, iso)
	if err != nil {
		return iso
	}
	return t.Format(constants.DisplayDateFormat)
}

// Today returns the current date in wire format
func Today() string {
	return time.Now().Format(constants.DateFormat)
}
