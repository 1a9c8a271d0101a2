package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list INPUT",
		Short: "List units and the transformers that apply to them",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := engine.Inspect(cmd.Context(), domain.InspectArgs{
				Input:   m.Path(args[0]),
				Policy:  loadPolicy(viper.GetViper()),
				Threads: viper.GetInt(runParallelConfigKey),
			})
			if err != nil {
				return err
			}

			return ui.DisplayUnits(cmd.Context(), units)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
