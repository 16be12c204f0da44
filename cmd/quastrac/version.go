package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quastra/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quastrac version banner",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.Banner())
		return nil
	},
}
