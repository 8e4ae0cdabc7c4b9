package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/facilityos/equiptrack/internal/models"
	"github.com/facilityos/equiptrack/internal/notify"
	"github.com/facilityos/equiptrack/internal/validation"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	items, err := ctx.API.ListEquipment(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to list equipment: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("No equipment found.")
		return nil
	}

	for _, e := range items {
		fmt.Printf("%-5d %-25s %-15s %-20s %s\n",
			e.ID, e.Name, e.TypeName, e.Status.Label(), models.FormatDate(e.LastCleanedDate))
	}
	return nil
}

type AddCmd struct {
	Name        string `arg:"" help:"Equipment name."`
	Type        string `short:"t" help:"Equipment type." required:""`
	Status      string `short:"s" help:"Status (Active|Inactive|Under Maintenance)." default:"Active"`
	LastCleaned string `short:"c" help:"Last cleaned date (YYYY-MM-DD)." required:""`
}

func (c *AddCmd) Run(ctx *Context) error {
	in := models.EquipmentInput{
		Name:            c.Name,
		TypeName:        c.Type,
		Status:          models.Status(c.Status),
		LastCleanedDate: c.LastCleaned,
	}
	if fe := validation.ValidateEquipment(in); !fe.Valid() {
		return errors.New(fe.Summary())
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	created, err := ctx.API.CreateEquipment(reqCtx, in)
	if err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	ctx.Sink.Notify(notify.KindSuccess, fmt.Sprintf("Added equipment %q (ID: %d)", created.Name, created.ID))
	return nil
}

type EditCmd struct {
	ID          int    `arg:"" help:"Equipment ID to edit."`
	Name        string `short:"n" help:"Equipment name." required:""`
	Type        string `short:"t" help:"Equipment type." required:""`
	Status      string `short:"s" help:"Status (Active|Inactive|Under Maintenance)." required:""`
	LastCleaned string `short:"c" help:"Last cleaned date (YYYY-MM-DD)." required:""`
}

func (c *EditCmd) Run(ctx *Context) error {
	in := models.EquipmentInput{
		Name:            c.Name,
		TypeName:        c.Type,
		Status:          models.Status(c.Status),
		LastCleanedDate: c.LastCleaned,
	}
	if fe := validation.ValidateEquipment(in); !fe.Valid() {
		return errors.New(fe.Summary())
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	updated, err := ctx.API.UpdateEquipment(reqCtx, c.ID, in)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}

	ctx.Sink.Notify(notify.KindSuccess, fmt.Sprintf("Updated equipment %q (ID: %d)", updated.Name, updated.ID))
	return nil
}

type DeleteCmd struct {
	ID  int  `arg:"" help:"Equipment ID to delete."`
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if !c.Yes {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Are you sure you want to delete equipment %d?", c.ID)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	if err := ctx.API.DeleteEquipment(reqCtx, c.ID); err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	ctx.Sink.Notify(notify.KindSuccess, fmt.Sprintf("Deleted equipment %d", c.ID))
	return nil
}
