package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/facilityos/equiptrack/internal/logger"
	"github.com/facilityos/equiptrack/internal/models"
)

// Client talks to the equipment service's JSON API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client against the given base URL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListEquipment fetches the full equipment collection in server order
func (c *Client) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	var out []models.Equipment
	if err := c.do(ctx, http.MethodGet, "/api/equipment", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEquipment creates a new record and returns it with its
// server-assigned id.
func (c *Client) CreateEquipment(ctx context.Context, in models.EquipmentInput) (models.Equipment, error) {
	var out models.Equipment
	if err := c.do(ctx, http.MethodPost, "/api/equipment", nil, in, &out); err != nil {
		return models.Equipment{}, err
	}
	return out, nil
}

// UpdateEquipment replaces the record's writable fields in place
func (c *Client) UpdateEquipment(ctx context.Context, id int, in models.EquipmentInput) (models.Equipment, error) {
	var out models.Equipment
	path := "/api/equipment/" + strconv.Itoa(id)
	if err := c.do(ctx, http.MethodPut, path, nil, in, &out); err != nil {
		return models.Equipment{}, err
	}
	return out, nil
}

// DeleteEquipment removes the record
func (c *Client) DeleteEquipment(ctx context.Context, id int) error {
	path := "/api/equipment/" + strconv.Itoa(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// LogMaintenance appends a maintenance entry for the equipment bound in
// the input.
func (c *Client) LogMaintenance(ctx context.Context, in models.MaintenanceInput) (models.MaintenanceEntry, error) {
	var out models.MaintenanceEntry
	if err := c.do(ctx, http.MethodPost, "/api/maintenance", nil, in, &out); err != nil {
		return models.MaintenanceEntry{}, err
	}
	return out, nil
}

// MaintenanceHistory fetches all maintenance entries for one equipment id
func (c *Client) MaintenanceHistory(ctx context.Context, equipmentID int) ([]models.MaintenanceEntry, error) {
	query := url.Values{"equipment_id": []string{strconv.Itoa(equipmentID)}}
	var out []models.MaintenanceEntry
	if err := c.do(ctx, http.MethodGet, "/api/maintenance", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("API request", "method", method, "url", reqURL, "request_id", requestID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("API request failed", "method", method, "url", reqURL, "request_id", requestID, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		logger.Warn("API request rejected", "method", method, "url", reqURL, "request_id", requestID, "status", res.StatusCode)
		return errorFromResponse(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorFromResponse surfaces the server-provided error message when the
// body carries one, and a generic message otherwise.
func errorFromResponse(res *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err == nil && len(data) > 0 {
		var er errorResponse
		if json.Unmarshal(data, &er) == nil && er.Error != "" {
			return fmt.Errorf("%s", er.Error)
		}
	}
	return fmt.Errorf("request failed with status %d", res.StatusCode)
}
