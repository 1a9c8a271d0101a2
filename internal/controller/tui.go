package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "cloak.dev/pkg/cloak/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress display.
func (p *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return nil
	}

	p.program = tea.NewProgram(newProgressModel(), tea.WithOutput(p.output), tea.WithInput(nil))
	p.done = make(chan error, 1)

	go func(program *tea.Program, done chan<- error) {
		_, err := program.Run()
		done <- err
	}(p.program, p.done)

	return nil
}

// Close stops the progress display and waits for it to release the terminal.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program = nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(closeMsg{})
	<-done
}

// TransformerStarted implements UI.
func (p *TUI) TransformerStarted(name string) {
	p.send(transformerStartedMsg{name: name})
}

// TransformerFinished implements UI.
func (p *TUI) TransformerFinished(name string, err error) {
	p.send(transformerFinishedMsg{name: name, err: err})
}

func (p *TUI) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplaySummary prints the run summary.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	renderHeader(&b)
	b.WriteString(renderSummaryTable(summary))

	_, err := fmt.Fprint(p.output, b.String())

	return err
}

// DisplayUnits shows the unit list, paginated when it does not fit on screen.
func (p *TUI) DisplayUnits(ctx context.Context, units []m.UnitReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newUnitListModel(units)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func renderHeader(b *strings.Builder) {
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║" + titleStyle.Render("                     Cloak - Obfuscation                        ") + "║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n\n")
}

type (
	transformerStartedMsg struct {
		name string
	}
	transformerFinishedMsg struct {
		name string
		err  error
	}
	closeMsg struct{}
)

type progressStep struct {
	name string
	err  error
	done bool
}

// progressModel shows one line per transformer with a spinner on the running one.
type progressModel struct {
	spinner spinner.Model
	steps   []progressStep
	closed  bool
}

func newProgressModel() progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return progressModel{spinner: s}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transformerStartedMsg:
		pm.steps = append(pm.steps, progressStep{name: msg.name})
		return pm, nil

	case transformerFinishedMsg:
		for i := len(pm.steps) - 1; i >= 0; i-- {
			if pm.steps[i].name == msg.name && !pm.steps[i].done {
				pm.steps[i].done = true
				pm.steps[i].err = msg.err

				break
			}
		}

		return pm, nil

	case closeMsg:
		pm.closed = true
		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	for _, step := range pm.steps {
		switch {
		case !step.done:
			fmt.Fprintf(&b, "  %s %s\n", pm.spinner.View(), step.name)
		case step.err != nil:
			fmt.Fprintf(&b, "  %s %s: %v\n", failureStyle.Render("✗"), step.name, step.err)
		default:
			fmt.Fprintf(&b, "  %s %s\n", successStyle.Render("✓"), step.name)
		}
	}

	return b.String()
}

// unitListModel represents the Bubble Tea model for browsing the unit list.
type unitListModel struct {
	units    []m.UnitReport
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newUnitListModel(units []m.UnitReport) unitListModel {
	return unitListModel{units: units}
}

func (ulm unitListModel) Init() tea.Cmd {
	return nil
}

func (ulm unitListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ulm.height = msg.Height
		ulm.width = msg.Width

		return ulm, nil

	case tea.KeyMsg:
		return ulm.handleKeyPress(msg)
	}

	return ulm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (ulm unitListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		ulm.quitting = true
		return ulm, tea.Quit
	}

	switch msg.String() {
	case "q":
		ulm.quitting = true
		return ulm, tea.Quit

	case "down", "j":
		ulm.offset = min(ulm.offset+1, ulm.maxOffset())

	case "up", "k":
		ulm.offset = max(ulm.offset-1, 0)

	case "g", "home":
		ulm.offset = 0

	case "G", "end":
		ulm.offset = ulm.maxOffset()

	case "d", "pgdown":
		ulm.offset = min(ulm.offset+ulm.itemsPerPage(), ulm.maxOffset())

	case "u", "pgup":
		ulm.offset = max(ulm.offset-ulm.itemsPerPage(), 0)
	}

	return ulm, nil
}

// itemsPerPage calculates how many units fit on screen.
func (ulm unitListModel) itemsPerPage() int {
	if ulm.height == 0 {
		return 10
	}
	// Header box and blank (4), title (2), totals (2), footer (3), margin (1).
	reserved := 12

	return max(ulm.height-reserved, 1)
}

func (ulm unitListModel) maxOffset() int {
	return max(len(ulm.units)-ulm.itemsPerPage(), 0)
}

// needsPagination returns true if the list is too large to fit on screen.
func (ulm unitListModel) needsPagination() bool {
	if len(ulm.units) == 0 || ulm.height == 0 {
		return false
	}

	return len(ulm.units) > ulm.itemsPerPage()
}

func (ulm unitListModel) View() string {
	var b strings.Builder

	renderHeader(&b)

	if len(ulm.units) == 0 {
		b.WriteString("  No units found\n")
		return b.String()
	}

	ulm.renderUnitList(&b)

	return b.String()
}

func (ulm unitListModel) renderUnitList(b *strings.Builder) {
	total := len(ulm.units)
	needsPagination := ulm.needsPagination()

	fmt.Fprintf(b, "  %s\n\n", titleStyle.Render("Units:"))

	start, end := 0, total
	if needsPagination {
		start = min(ulm.offset, total-1)
		end = min(start+ulm.itemsPerPage(), total)
	}

	totalStrings := 0

	for _, unit := range ulm.units {
		totalStrings += unit.StringLiterals
	}

	for _, unit := range ulm.units[start:end] {
		transformers := faintStyle.Render("untouched")
		if len(unit.Transformers) > 0 {
			transformers = fmt.Sprint(unit.Transformers)
		}

		fmt.Fprintf(b, "  %s: %d fields, %d methods, %d strings %s\n",
			unit.Name, unit.Fields, unit.Methods, unit.StringLiterals, transformers)
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  Total: %d unit(s), %d string literal(s)\n", total, totalStrings)

	if needsPagination {
		b.WriteString("\n")

		perPage := ulm.itemsPerPage()
		currentPage := (ulm.offset / perPage) + 1
		totalPages := (total + perPage - 1) / perPage
		fmt.Fprintf(b, "  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, total)
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}
}
