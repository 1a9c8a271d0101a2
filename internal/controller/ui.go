// Package controller provides output adapters for displaying obfuscation runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "cloak.dev/pkg/cloak/internal/model"
)

// UI defines the interface for reporting pipeline progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	// TransformerStarted and TransformerFinished report pipeline progress.
	TransformerStarted(name string)
	TransformerFinished(name string, err error)
	DisplaySummary(ctx context.Context, summary m.RunSummary) error
	DisplayUnits(ctx context.Context, units []m.UnitReport) error
}

// NewUI returns the interactive UI when useTTY is set, the plain text UI
// otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
