package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"quastra/internal/diagfmt"
	"quastra/internal/driver"
)

var (
	buildStdout bool
	buildCC     string
	buildRunCC  bool
)

func init() {
	buildCmd.Flags().BoolVar(&buildStdout, "stdout", false, "write emitted C++ to stdout instead of the output file")
	buildCmd.Flags().StringVar(&buildCC, "cc", "c++", "host C++ compiler to invoke with --compile")
	buildCmd.Flags().BoolVar(&buildRunCC, "compile", false, "invoke --cc on the emitted output as an opaque subprocess")
}

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Run the pipeline and emit C++",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		fs, ids, outputPath, err := resolveInput(path)
		if err != nil {
			return err
		}

		maxDiag, _ := cmd.Flags().GetInt("max-diagnostics")
		res := driver.RunCombined(ids, fs, maxDiag)
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, fs, colorOptsFromFlag(cmd))
		}
		if !res.OK {
			return withExitCode(driver.ExitDataErr, fmt.Errorf("compilation failed"))
		}

		cpp := driver.Emit(res.Stmts)
		if buildStdout {
			fmt.Fprint(cmd.OutOrStdout(), cpp)
			return nil
		}

		if err := os.WriteFile(outputPath, []byte(cpp), 0o644); err != nil {
			return withExitCode(driver.ExitIOErr, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)

		if buildRunCC {
			binPath := strings.TrimSuffix(outputPath, ".cpp")
			c := exec.Command(buildCC, outputPath, "-o", binPath)
			c.Stdout = cmd.OutOrStdout()
			c.Stderr = cmd.ErrOrStderr()
			if err := c.Run(); err != nil {
				return withExitCode(driver.ExitRuntimeFail, fmt.Errorf("%s failed: %w", buildCC, err))
			}
		}
		return nil
	},
}

// colorOptsFromFlag resolves the --color flag (auto|on|off) against
// whether stderr — where diagnostics are rendered — is a terminal.
func colorOptsFromFlag(cmd *cobra.Command) diagfmt.Options {
	mode, _ := cmd.Flags().GetString("color")
	colorOn := diagfmt.DetectColor(os.Stderr.Fd())
	switch mode {
	case "on":
		colorOn = true
	case "off":
		colorOn = false
	}
	return diagfmt.Options{Color: colorOn}
}
