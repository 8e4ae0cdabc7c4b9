package cli

import (
	"errors"
	"fmt"

	"github.com/facilityos/equiptrack/internal/models"
	"github.com/facilityos/equiptrack/internal/notify"
	"github.com/facilityos/equiptrack/internal/validation"
)

type MaintenanceLogCmd struct {
	EquipmentID int    `arg:"" help:"Equipment ID to log maintenance for."`
	Notes       string `short:"n" help:"Maintenance notes." required:""`
	PerformedBy string `short:"p" help:"Technician who performed the work." required:""`
	Date        string `short:"d" help:"Maintenance date (YYYY-MM-DD). Defaults to today."`
}

func (c *MaintenanceLogCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = models.Today()
	}

	in := models.MaintenanceInput{
		EquipmentID:     c.EquipmentID,
		MaintenanceDate: date,
		Notes:           c.Notes,
		PerformedBy:     c.PerformedBy,
	}
	if fe := validation.ValidateMaintenance(in); !fe.Valid() {
		return errors.New(fe.Summary())
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	if _, err := ctx.API.LogMaintenance(reqCtx, in); err != nil {
		return fmt.Errorf("failed to log maintenance: %w", err)
	}

	ctx.Sink.Notify(notify.KindSuccess, fmt.Sprintf("Logged maintenance for equipment %d", c.EquipmentID))
	return nil
}

type MaintenanceHistoryCmd struct {
	EquipmentID int `arg:"" help:"Equipment ID to show history for."`
}

func (c *MaintenanceHistoryCmd) Run(ctx *Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	entries, err := ctx.API.MaintenanceHistory(reqCtx, c.EquipmentID)
	if err != nil {
		return fmt.Errorf("failed to load maintenance history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No maintenance recorded for this equipment.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-20s %s\n", models.FormatDate(e.MaintenanceDate), e.PerformedBy, e.Notes)
	}
	return nil
}
