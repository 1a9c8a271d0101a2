package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "cloak.dev/pkg/cloak/internal/model"
)

func TestTUI_DisplayUnits_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayUnits(context.Background(), nil); err != nil {
		t.Fatalf("DisplayUnits() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Cloak - Obfuscation") {
		t.Error("Output should contain header")
	}

	if !strings.Contains(output, "No units found") {
		t.Errorf("Expected empty message, got: %s", output)
	}
}

func TestTUI_DisplayUnits_SmallList(t *testing.T) {
	var buf bytes.Buffer

	units := []m.UnitReport{
		{Name: "com/example/A", Fields: 1, Methods: 2, StringLiterals: 3, Transformers: []string{"fields"}},
		{Name: "com/example/B", StringLiterals: 2},
	}

	if err := NewTUI(&buf).DisplayUnits(context.Background(), units); err != nil {
		t.Fatalf("DisplayUnits() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"com/example/A", "com/example/B", "untouched", "Total: 2 unit(s), 5 string literal(s)"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestTUI_DisplaySummary(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplaySummary(context.Background(), m.RunSummary{RunID: "abc", Applied: []string{"strings"}}); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	if !strings.Contains(buf.String(), "abc") || !strings.Contains(buf.String(), "strings") {
		t.Errorf("unexpected summary output:\n%s", buf.String())
	}
}

func TestTUI_ProgressEventsWithoutStart(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})

	// Events before Start and Close without Start are no-ops.
	tui.TransformerStarted("fields")
	tui.TransformerFinished("fields", nil)
	tui.Close(context.Background())
}

func TestProgressModel_Update(t *testing.T) {
	model := newProgressModel()

	next, _ := model.Update(transformerStartedMsg{name: "fields"})
	next, _ = next.Update(transformerFinishedMsg{name: "fields"})
	next, _ = next.Update(transformerStartedMsg{name: "strings"})
	next, _ = next.Update(transformerFinishedMsg{name: "strings", err: errors.New("broken")})
	next, _ = next.Update(transformerStartedMsg{name: "marker"})

	view := next.View()
	if !strings.Contains(view, "✓ fields") {
		t.Errorf("expected finished fields step, got:\n%s", view)
	}

	if !strings.Contains(view, "strings: broken") {
		t.Errorf("expected failed strings step, got:\n%s", view)
	}

	if !strings.Contains(view, "marker") {
		t.Errorf("expected running marker step, got:\n%s", view)
	}

	final, cmd := next.Update(closeMsg{})
	if cmd == nil {
		t.Fatal("closeMsg should quit the program")
	}

	if !final.(progressModel).closed {
		t.Error("model should be marked closed")
	}
}

func TestUnitListModel_Pagination(t *testing.T) {
	units := make([]m.UnitReport, 30)
	for i := range units {
		units[i] = m.UnitReport{Name: fmt.Sprintf("com/example/U%02d", i)}
	}

	model := newUnitListModel(units)
	if model.needsPagination() {
		t.Fatal("no pagination without a known height")
	}

	next, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 22})
	model = next.(unitListModel)

	if !model.needsPagination() {
		t.Fatal("30 units should not fit in 10 rows")
	}

	if got := model.maxOffset(); got != 20 {
		t.Fatalf("maxOffset() = %d, want 20", got)
	}

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	model = next.(unitListModel)

	if model.offset != 20 {
		t.Fatalf("offset after G = %d, want 20", model.offset)
	}

	view := model.View()
	if !strings.Contains(view, "com/example/U29") || strings.Contains(view, "com/example/U00") {
		t.Errorf("last page should show the tail of the list:\n%s", view)
	}

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if next.(unitListModel).offset != 19 {
		t.Fatalf("offset after k = %d, want 19", next.(unitListModel).offset)
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}
