// Command quastrac is the Quastra toolchain driver described in spec.md
// §6: an external collaborator around the tested core, never part of it.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"quastra/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "quastrac",
	Short: "Quastra language compiler and toolchain",
	Long:  "quastrac lexes, parses, resolves, and type-checks Quastra programs, then either interprets them or emits C++.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 200, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}
