package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quastra/internal/diagfmt"
	"quastra/internal/driver"
	"quastra/internal/eval"
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Run the pipeline through the in-process evaluator",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		fs, ids, _, err := resolveInput(path)
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

		if err := driver.Interpret(res.Stmts, cmd.OutOrStdout()); err != nil {
			// spec.md §7: runtime errors caught at the top level of
			// interpret are printed as "Runtime Error: <message>".
			if _, ok := err.(*eval.RuntimeError); ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Runtime Error: "+err.Error())
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return withExitCode(driver.ExitRuntimeFail, err)
		}
		return nil
	},
}
