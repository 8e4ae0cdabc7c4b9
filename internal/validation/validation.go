package validation

import (
	"sort"
	"strings"
	"time"

	"github.com/facilityos/equiptrack/internal/constants"
	"github.com/facilityos/equiptrack/internal/models"
)

// FieldErrors maps a field name to its validation message. An empty map
// means the input is valid.
type FieldErrors map[string]string

// Valid reports whether no field failed validation
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Summary joins all messages into one line, fields in stable order
func (fe FieldErrors) Summary() string {
	if len(fe) == 0 {
		return ""
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fe[f])
	}
	return strings.Join(msgs, "; ")
}

// ValidDate reports whether s is a parseable wire-format date
func ValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, strings.TrimSpace(s))
	return err == nil
}

// ValidateEquipment checks the equipment form fields. All fields are
// required; status must be one of the accepted values.
func ValidateEquipment(in models.EquipmentInput) FieldErrors {
	fe := FieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		fe["name"] = "Name is required"
	}
	if strings.TrimSpace(in.TypeName) == "" {
		fe["type_name"] = "Type is required"
	}
	if !in.Status.Known() {
		fe["status"] = "Please select a status"
	}
	if strings.TrimSpace(in.LastCleanedDate) == "" {
		fe["last_cleaned_date"] = "Please select a date"
	} else if !ValidDate(in.LastCleanedDate) {
		fe["last_cleaned_date"] = "Date must be YYYY-MM-DD"
	}

	return fe
}

// ValidateMaintenance checks the maintenance form fields
func ValidateMaintenance(in models.MaintenanceInput) FieldErrors {
	fe := FieldErrors{}

	if strings.TrimSpace(in.MaintenanceDate) == "" {
		fe["maintenance_date"] = "Please select a date"
	} else if !ValidDate(in.MaintenanceDate) {
		fe["maintenance_date"] = "Date must be YYYY-MM-DD"
	}
	if strings.TrimSpace(in.Notes) == "" {
		fe["notes"] = "Please add some notes"
	}
	if strings.TrimSpace(in.PerformedBy) == "" {
		fe["performed_by"] = "Please specify who performed it"
	}

	return fe
}
