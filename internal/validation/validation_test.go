package validation

import (
	"strings"
	"testing"

	"github.com/facilityos/equiptrack/internal/models"
)

func validEquipmentInput() models.EquipmentInput {
	return models.EquipmentInput{
		Name:            "Pump A",
		TypeName:        "Pump",
		Status:          models.StatusActive,
		LastCleanedDate: "2024-01-15",
	}
}

func TestValidateEquipment_Valid(t *testing.T) {
	fe := ValidateEquipment(validEquipmentInput())
	if !fe.Valid() {
		t.Errorf("expected valid input, got errors: %v", fe)
	}
}

func TestValidateEquipment_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.EquipmentInput)
		field  string
	}{
		{"empty name", func(in *models.EquipmentInput) { in.Name = "" }, "name"},
		{"whitespace name", func(in *models.EquipmentInput) { in.Name = "   " }, "name"},
		{"empty type", func(in *models.EquipmentInput) { in.TypeName = "" }, "type_name"},
		{"empty date", func(in *models.EquipmentInput) { in.LastCleanedDate = "" }, "last_cleaned_date"},
		{"bad date", func(in *models.EquipmentInput) { in.LastCleanedDate = "15/01/2024" }, "last_cleaned_date"},
		{"unknown status", func(in *models.EquipmentInput) { in.Status = "Broken" }, "status"},
		{"empty status", func(in *models.EquipmentInput) { in.Status = "" }, "status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validEquipmentInput()
			tc.mutate(&in)
			fe := ValidateEquipment(in)
			if fe.Valid() {
				t.Fatal("expected validation to fail")
			}
			if _, ok := fe[tc.field]; !ok {
				t.Errorf("expected message for field %q, got %v", tc.field, fe)
			}
		})
	}
}

func TestValidateEquipment_AllStatusesAccepted(t *testing.T) {
	for _, s := range models.AllStatuses() {
		in := validEquipmentInput()
		in.Status = s
		if fe := ValidateEquipment(in); !fe.Valid() {
			t.Errorf("status %q rejected: %v", s, fe)
		}
	}
}

func TestValidateMaintenance(t *testing.T) {
	in := models.MaintenanceInput{
		EquipmentID:     7,
		MaintenanceDate: "2024-02-01",
		Notes:           "Replaced seal",
		PerformedBy:     "J. Lee",
	}
	if fe := ValidateMaintenance(in); !fe.Valid() {
		t.Errorf("expected valid input, got errors: %v", fe)
	}

	in.Notes = ""
	in.PerformedBy = " "
	in.MaintenanceDate = "soon"
	fe := ValidateMaintenance(in)
	if len(fe) != 3 {
		t.Errorf("expected 3 field errors, got %v", fe)
	}
	for _, field := range []string{"maintenance_date", "notes", "performed_by"} {
		if _, ok := fe[field]; !ok {
			t.Errorf("expected message for field %q", field)
		}
	}
}

func TestFieldErrorsSummary(t *testing.T) {
	fe := FieldErrors{}
	if fe.Summary() != "" {
		t.Error("expected empty summary for valid input")
	}

	fe = FieldErrors{"b": "second", "a": "first"}
	got := fe.Summary()
	if got != "first; second" {
		t.Errorf("expected stable field order, got %q", got)
	}
	if !strings.Contains(got, "; ") {
		t.Errorf("expected joined messages, got %q", got)
	}
}
