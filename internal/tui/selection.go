package tui

import "github.com/facilityos/equiptrack/internal/models"

// SelectionKind enumerates the modal interactions the board can show
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionCreating
	SelectionEditing
	SelectionLoggingMaintenance
	SelectionViewingHistory
)

// Selection is the single modal selector. Exactly one interaction can
// be active at a time; setting a new selection replaces the previous
// one, so mutual exclusion holds by construction.
type Selection struct {
	kind   SelectionKind
	target *models.Equipment
}

func NoSelection() Selection {
	return Selection{kind: SelectionNone}
}

func Creating() Selection {
	return Selection{kind: SelectionCreating}
}

func Editing(item models.Equipment) Selection {
	return Selection{kind: SelectionEditing, target: &item}
}

func LoggingMaintenance(item models.Equipment) Selection {
	return Selection{kind: SelectionLoggingMaintenance, target: &item}
}

func ViewingHistory(item models.Equipment) Selection {
	return Selection{kind: SelectionViewingHistory, target: &item}
}

// Kind returns which interaction is active
func (s Selection) Kind() SelectionKind {
	return s.kind
}

// Target returns the equipment the interaction applies to. Nil for
// SelectionNone and SelectionCreating.
func (s Selection) Target() *models.Equipment {
	return s.target
}

// Active reports whether any modal interaction is open
func (s Selection) Active() bool {
	return s.kind != SelectionNone
}
