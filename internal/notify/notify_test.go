package notify

import "testing"

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	if last := r.Last(); last.Kind != "" || last.Message != "" {
		t.Errorf("expected zero entry from empty recorder, got %+v", last)
	}

	r.Notify(KindSuccess, "Equipment saved")
	r.Notify(KindError, "Failed to delete equipment")

	if len(r.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(r.Entries))
	}
	if r.Entries[0].Kind != KindSuccess || r.Entries[0].Message != "Equipment saved" {
		t.Errorf("unexpected first entry: %+v", r.Entries[0])
	}
	if last := r.Last(); last.Kind != KindError {
		t.Errorf("expected last entry to be the error, got %+v", last)
	}
}
