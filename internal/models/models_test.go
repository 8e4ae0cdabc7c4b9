package models

import "testing"

func TestStatusKnown(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.Known() {
			t.Errorf("expected %q to be a known status", s)
		}
	}

	if Status("Decommissioned").Known() {
		t.Error("expected unknown status to report Known() == false")
	}
}

func TestStatusLabelFallback(t *testing.T) {
	if got := StatusActive.Label(); got != "Active" {
		t.Errorf("expected label Active, got %q", got)
	}

	// Unrecognized values must render as-is, never panic
	if got := Status("Quarantined").Label(); got != "Quarantined" {
		t.Errorf("expected identity fallback, got %q", got)
	}
	if got := Status("").Label(); got != "" {
		t.Errorf("expected empty fallback, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-01-15"); got != "Jan 15, 2024" {
		t.Errorf("expected formatted date, got %q", got)
	}

	// Invalid wire dates come back unchanged
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("expected raw passthrough, got %q", got)
	}
}

func TestEquipmentInputPrefill(t *testing.T) {
	e := Equipment{
		ID:              7,
		Name:            "Pump A",
		TypeName:        "Pump",
		Status:          StatusActive,
		LastCleanedDate: "2024-01-15",
	}

	in := e.Input()
	if in.Name != e.Name || in.TypeName != e.TypeName || in.Status != e.Status || in.LastCleanedDate != e.LastCleanedDate {
		t.Errorf("prefill mismatch: %+v", in)
	}
}
