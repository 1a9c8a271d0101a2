package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "cloak.dev/pkg/cloak/internal/model"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default cloak.yaml configuration file",
		Long: `Create a cloak.yaml in the current working directory populated with the
default filters and transformer settings so it can be edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			defaults := viper.New()
			setDefaults(defaults)

			cmd.Printf("Wrote %s\n", targetPath)
			printTransformerDefaults(cmd, loadPolicy(defaults))

			return nil
		},
	}
}

// printTransformerDefaults lists the configured transformers in run order.
func printTransformerDefaults(cmd *cobra.Command, policy m.Policy) {
	names := make([]string, 0, len(policy.Transformers))
	for name := range policy.Transformers {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		a, b := policy.Transformers[names[i]], policy.Transformers[names[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}

		return names[i] < names[j]
	})

	cmd.Println("Transformers in run order:")

	for _, name := range names {
		tp := policy.Transformers[name]

		state := "disabled"
		if tp.Enabled {
			state = "enabled"
		}

		cmd.Printf("  %d. %-8s %s\n", tp.Order, name, state)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
