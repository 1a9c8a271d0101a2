package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// modulePath is reported when the binary carries no build information.
const modulePath = "cloak.dev/pkg/cloak"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the cloak build version, its module path and the Go version used to build it.",
		Run: func(cmd *cobra.Command, _ []string) {
			version, module, goVersion := "unknown", modulePath, runtime.Version()

			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" {
					version = info.Main.Version
				}

				if info.Main.Path != "" {
					module = info.Main.Path
				}

				goVersion = info.GoVersion
			}

			cmd.Println("cloak version\t", version)
			cmd.Println("module\t\t", module)
			cmd.Println("go version\t", goVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
