// Package cmd provides the root command and CLI setup for cloak.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cloak.dev/pkg/cloak/internal/adapter"
	"cloak.dev/pkg/cloak/internal/controller"
	"cloak.dev/pkg/cloak/internal/domain"
	"cloak.dev/pkg/cloak/internal/domain/transformers"
)

var archiveAdapter adapter.ArchiveAdapter
var classPathAdapter adapter.ClassPathAdapter
var codec adapter.Codec
var mappingStore adapter.MappingStore
var engine domain.Engine
var ui controller.UI

// configFileFlag points at an explicit configuration file.
var configFileFlag string

// verboseFlag switches logging to Debug.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	archiveAdapter = adapter.NewLocalArchiveAdapter()
	classPathAdapter = adapter.NewLocalClassPathAdapter()
	codec = adapter.NewYAMLCodec()
	mappingStore = adapter.NewLocalMappingStore()
	engine = domain.NewEngine(
		archiveAdapter,
		classPathAdapter,
		codec,
		mappingStore,
		ui,
		transformers.Default(),
	)
}

const patternHelp = `Unit patterns select which units a transformer touches:
  - *                    every unit
  - com/example/**       every unit under a package (dots also accepted)
  - ^com/example/Main    exactly one unit`

const rootLongDescription = `Cloak is an obfuscator for compiled programs. It renames fields and
methods consistently across the inheritance hierarchy, encrypts string
literals behind a generated decoder and stamps a marker into every unit.

` + patternHelp

const obfuscateLongDescription = `Obfuscate the units of INPUT and write the result to OUTPUT.

Transformers run in the configured order; the first failure aborts the run
and OUTPUT is left untouched.

` + patternHelp

const listLongDescription = `List the units of INPUT along with the transformers that would touch each
of them under the current configuration.

` + patternHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "cloak",
		Short:        "Obfuscator for compiled programs",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := loadConfigFile(configFileFlag); err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}

			configureLogger(logFileFlag, verboseFlag)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configFileFlag, configFlagName, "", "config file (default ./"+configFileName+")")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")

	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "log file path (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
