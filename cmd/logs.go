package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmdy/internal/execlog"
	"github.com/VoxDroid/cmdy/internal/style"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the execution log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		l, err := execlog.Open()
		if err != nil {
			return err
		}
		text, err := l.ReadAll()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n%s\n\n", style.Header.Render("Execution Logs:"), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
}
