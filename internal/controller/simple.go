package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "cloak.dev/pkg/cloak/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// TransformerStarted prints the transformer being applied.
func (s *SimpleUI) TransformerStarted(name string) {
	s.printf("Applying %s\n", name)
}

// TransformerFinished prints the transformer outcome.
func (s *SimpleUI) TransformerFinished(name string, err error) {
	if err != nil {
		s.printf("Transformer %s failed: %v\n", name, err)
		return
	}

	s.printf("Applied %s\n", name)
}

// DisplaySummary prints the run summary table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	return nil
}

// DisplayUnits prints the unit table.
func (s *SimpleUI) DisplayUnits(ctx context.Context, units []m.UnitReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderUnitTable(units))

	return nil
}

func renderSummaryTable(summary m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Item", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	applied := strings.Join(summary.Applied, ", ")
	if applied == "" {
		applied = "none"
	}

	rows := [][]string{
		{"Run", summary.RunID},
		{"Input", string(summary.Input)},
		{"Output", string(summary.Output)},
		{"Units", fmt.Sprintf("%d", summary.Units)},
		{"Resources", fmt.Sprintf("%d", summary.Resources)},
		{"Libraries", fmt.Sprintf("%d", summary.Libraries)},
		{"Transformers", applied},
		{"Renamed fields", fmt.Sprintf("%d", summary.RenamedFields)},
		{"Renamed methods", fmt.Sprintf("%d", summary.RenamedMethods)},
		{"Encrypted strings", fmt.Sprintf("%d", summary.EncryptedStrings)},
	}

	if summary.DecoderUnit != "" {
		rows = append(rows, []string{"Decoder unit", summary.DecoderUnit})
	}

	if summary.Mapping != "" {
		rows = append(rows, []string{"Mapping", string(summary.Mapping)})
	}

	table.AppendBulk(rows)
	table.SetFooter([]string{"Duration", summary.Duration.Round(time.Millisecond).String()})
	table.Render()

	return tableBuffer.String()
}

func renderUnitTable(units []m.UnitReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Unit", "Super", "Fields", "Methods", "Strings", "Transformers"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	totalFields, totalMethods, totalStrings := 0, 0, 0

	for _, unit := range units {
		transformers := strings.Join(unit.Transformers, ",")
		if transformers == "" {
			transformers = "-"
		}

		table.Append([]string{
			unit.Name,
			unit.Super,
			fmt.Sprintf("%d", unit.Fields),
			fmt.Sprintf("%d", unit.Methods),
			fmt.Sprintf("%d", unit.StringLiterals),
			transformers,
		})

		totalFields += unit.Fields
		totalMethods += unit.Methods
		totalStrings += unit.StringLiterals
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Units %d", len(units)),
		"",
		fmt.Sprintf("%d", totalFields),
		fmt.Sprintf("%d", totalMethods),
		fmt.Sprintf("%d", totalStrings),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
