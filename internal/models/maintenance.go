package models

// MaintenanceEntry is one maintenance event tied to a single piece of
// equipment. Entries are append-only from the client's perspective.
type MaintenanceEntry struct {
	ID              int    `json:"id,omitempty"`
	EquipmentID     int    `json:"equipment_id"`
	MaintenanceDate string `json:"maintenance_date"`
	Notes           string `json:"notes"`
	PerformedBy     string `json:"performed_by"`
}

// MaintenanceInput is the payload for logging a new entry. EquipmentID
// is bound by the caller, never by operator input.
type MaintenanceInput struct {
	EquipmentID     int    `json:"equipment_id"`
	MaintenanceDate string `json:"maintenance_date"`
	Notes           string `json:"notes"`
	PerformedBy     string `json:"performed_by"`
}
