package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmdy/internal/registry"
	"github.com/VoxDroid/cmdy/internal/style"
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List saved command sets",
	Long:  "List saved command sets, optionally fuzzy-filtered. Example:\n  cmdy list bld",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := registry.Open()
		if err != nil {
			return err
		}
		cfg, err := store.Load()
		if err != nil {
			return err
		}

		sets := cfg.CommandSets
		if q := strings.TrimSpace(strings.Join(args, " ")); q != "" {
			sets = cfg.Search(q)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "\n%s\n", style.Header.Render("Stored Command Sets:"))
		for i, s := range sets {
			_, _ = fmt.Fprintf(out, "%d. %s - Commands: %s\n", i+1, s.Name, formatCommands(s.Commands))
		}
		return nil
	},
}

// formatCommands renders commands as a bracketed list of quoted strings.
func formatCommands(cmds []string) string {
	quoted := make([]string, len(cmds))
	for i, c := range cmds {
		quoted[i] = strconv.Quote(c)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func init() {
	rootCmd.AddCommand(listCmd)
}
