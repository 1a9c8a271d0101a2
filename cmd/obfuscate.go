package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

const obfuscatedSuffix = "-obf"

var obfuscateOutputFlag string
var obfuscateParallelFlag int
var obfuscateLibsFlag []string
var obfuscateMappingFlag string

// obfuscateCmd represents the obfuscate command.
var obfuscateCmd = newObfuscateCmd()

func newObfuscateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "obfuscate INPUT",
		Short: "Obfuscate a container",
		Long:  obfuscateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := m.Path(args[0])

			output := m.Path(viper.GetString(outputConfigKey))
			if output == "" {
				output = defaultOutputPath(input)
			}

			summary, err := engine.Obfuscate(cmd.Context(), domain.ObfuscateArgs{
				Input:   input,
				Output:  output,
				Mapping: m.Path(viper.GetString(mappingConfigKey)),
				Policy:  loadPolicy(viper.GetViper()),
				Threads: viper.GetInt(runParallelConfigKey),
			})
			if err != nil {
				return err
			}

			return ui.DisplaySummary(cmd.Context(), summary)
		},
	}

	configureObfuscateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(obfuscateCmd)
}

func configureObfuscateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&obfuscateOutputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "output container (default INPUT with "+obfuscatedSuffix+" suffix)")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().StringVar(&obfuscateMappingFlag, mappingFlagName, viper.GetString(mappingConfigKey), "write the rename mapping to this file")
	bindFlagToConfig(cmd.Flags().Lookup(mappingFlagName), mappingConfigKey)

	cmd.Flags().IntVarP(&obfuscateParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for decoding and encoding units")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringArrayVar(&obfuscateLibsFlag, librariesFlagName, viper.GetStringSlice(librariesConfigKey), "library container or directory of containers (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(librariesFlagName), librariesConfigKey)
}

// defaultOutputPath derives "app-obf.jar" from "app.jar".
func defaultOutputPath(input m.Path) m.Path {
	path := string(input)
	ext := filepath.Ext(path)

	return m.Path(strings.TrimSuffix(path, ext) + obfuscatedSuffix + ext)
}
