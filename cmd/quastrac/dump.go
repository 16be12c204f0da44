package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quastra/internal/driver"
	"quastra/internal/lexer"
)

var (
	dumpWhat   string
	dumpFormat string
)

func init() {
	dumpCmd.Flags().StringVar(&dumpWhat, "what", "tokens", "what to dump (tokens|diagnostics)")
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "text", "output format (text|msgpack)")
}

var dumpCmd = &cobra.Command{
	Use:   "dump [path]",
	Short: "Dump the token stream or diagnostic bag for external tooling",
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

		format := driver.DumpText
		if dumpFormat == "msgpack" {
			format = driver.DumpMsgpack
		}

		switch dumpWhat {
		case "tokens":
			for _, id := range ids {
				lx := lexer.New(fs.Get(id), nil)
				if err := driver.DumpTokens(cmd.OutOrStdout(), lx.Tokens(), format); err != nil {
					return withExitCode(driver.ExitIOErr, err)
				}
			}
		case "diagnostics":
			maxDiag, _ := cmd.Flags().GetInt("max-diagnostics")
			res := driver.RunCombined(ids, fs, maxDiag)
			if err := driver.DumpDiagnostics(cmd.OutOrStdout(), res.Bag, fs, format); err != nil {
				return withExitCode(driver.ExitIOErr, err)
			}
		default:
			return withExitCode(driver.ExitUsage, fmt.Errorf("unknown --what %q (must be tokens or diagnostics)", dumpWhat))
		}
		return nil
	},
}
