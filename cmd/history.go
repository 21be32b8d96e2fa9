package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmdy/internal/db"
	"github.com/VoxDroid/cmdy/internal/history"
	"github.com/VoxDroid/cmdy/internal/style"
)

const historyLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history [name]",
	Short: "Show recent runs, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		recs, err := history.NewRepository(dbConn).List(name, historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			_, _ = fmt.Fprintln(out, "No runs recorded.")
			return nil
		}
		_, _ = fmt.Fprintf(out, "\n%s\n", style.Header.Render("Run History:"))
		for _, r := range recs {
			_, _ = fmt.Fprintln(out, formatRecord(r))
		}
		return nil
	},
}

func formatRecord(r history.Record) string {
	status := style.Success.Render(string(r.Status))
	if r.Status == history.StatusFailed {
		status = style.Failure.Render(string(r.Status))
	}
	line := fmt.Sprintf("%s  %-9s %s in %s (%d commands, %s)",
		r.StartedAt.Local().Format("2006-01-02 15:04:05"), status, r.Name, r.Directory,
		r.CommandsRun, r.Duration.Round(time.Millisecond))
	if r.FailedCommand != "" {
		line += " failed at: " + r.FailedCommand
	}
	return line
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
