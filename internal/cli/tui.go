package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/facilityos/equiptrack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// The board renders notifications on its own status line; no
	// console sink while the TUI owns the terminal.
	p := tea.NewProgram(tui.NewModel(ctx.API, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
