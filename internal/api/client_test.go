package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/facilityos/equiptrack/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second)
}

func TestListEquipment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/equipment", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Pump A","type_name":"Pump","status":"Active","last_cleaned_date":"2024-01-15"},
			{"id":2,"name":"Chiller B","type_name":"Chiller","status":"Under Maintenance","last_cleaned_date":"2024-02-01"}
		]`))
	})

	items, err := client.ListEquipment(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Server order is preserved as-is
	require.Equal(t, "Pump A", items[0].Name)
	require.Equal(t, models.StatusUnderMaintenance, items[1].Status)
}

func TestCreateEquipment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/equipment", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "Pump A", in["name"])
		require.NotContains(t, in, "id")

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Equipment{
			ID: 42, Name: "Pump A", TypeName: "Pump",
			Status: models.StatusActive, LastCleanedDate: "2024-01-15",
		})
	})

	created, err := client.CreateEquipment(context.Background(), models.EquipmentInput{
		Name: "Pump A", TypeName: "Pump",
		Status: models.StatusActive, LastCleanedDate: "2024-01-15",
	})
	require.NoError(t, err)
	require.Equal(t, 42, created.ID)
}

func TestUpdateEquipment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/equipment/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Equipment{ID: 7, Name: "Pump A2"})
	})

	updated, err := client.UpdateEquipment(context.Background(), 7, models.EquipmentInput{Name: "Pump A2"})
	require.NoError(t, err)
	require.Equal(t, "Pump A2", updated.Name)
}

func TestDeleteEquipment(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteEquipment(context.Background(), 7))
	require.Equal(t, "/api/equipment/7", gotPath)
}

func TestLogMaintenanceCarriesEquipmentID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/maintenance", r.URL.Path)

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.EqualValues(t, 7, in["equipment_id"])
		require.Equal(t, "Replaced seal", in["notes"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.MaintenanceEntry{ID: 1, EquipmentID: 7})
	})

	entry, err := client.LogMaintenance(context.Background(), models.MaintenanceInput{
		EquipmentID:     7,
		MaintenanceDate: "2024-02-01",
		Notes:           "Replaced seal",
		PerformedBy:     "J. Lee",
	})
	require.NoError(t, err)
	require.Equal(t, 7, entry.EquipmentID)
}

func TestMaintenanceHistory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/maintenance", r.URL.Path)
		require.Equal(t, "7", r.URL.Query().Get("equipment_id"))
		_, _ = w.Write([]byte(`[{"id":1,"equipment_id":7,"maintenance_date":"2024-02-01","notes":"Replaced seal","performed_by":"J. Lee"}]`))
	})

	entries, err := client.MaintenanceHistory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "J. Lee", entries[0].PerformedBy)
}

func TestServerErrorMessageSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"equipment name already exists"}`))
	})

	_, err := client.CreateEquipment(context.Background(), models.EquipmentInput{Name: "Pump A"})
	require.Error(t, err)
	require.Equal(t, "equipment name already exists", err.Error())
}

func TestGenericErrorForOpaqueFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	err := client.DeleteEquipment(context.Background(), 1)
	require.Error(t, err)
	require.Equal(t, "request failed with status 500", err.Error())
}
