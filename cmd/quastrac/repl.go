package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"quastra/internal/driver"
	"quastra/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(ui.NewReplModel())
		if _, err := p.Run(); err != nil {
			return withExitCode(driver.ExitRuntimeFail, err)
		}
		return nil
	},
}
