package notify

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Kind classifies a notification for presentation
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Sink receives fire-and-forget user notifications. The rest of the
// client depends only on this interface, never on a concrete renderer.
type Sink interface {
	Notify(kind Kind, message string)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Console prints notifications to stdout/stderr for headless commands
type Console struct{}

func (Console) Notify(kind Kind, message string) {
	switch kind {
	case KindSuccess:
		fmt.Println(successStyle.Render("✓ " + message))
	case KindError:
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+message))
	default:
		fmt.Println(infoStyle.Render(message))
	}
}

// Entry is one recorded notification
type Entry struct {
	Kind    Kind
	Message string
}

// Recorder captures notifications for inspection in tests
type Recorder struct {
	Entries []Entry
}

func (r *Recorder) Notify(kind Kind, message string) {
	r.Entries = append(r.Entries, Entry{Kind: kind, Message: message})
}

// Last returns the most recent entry, or a zero Entry if none
func (r *Recorder) Last() Entry {
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[len(r.Entries)-1]
}
