package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmdy/internal/logging"
	"github.com/VoxDroid/cmdy/internal/style"
)

const usageLine = "Usage: cmdy <command>. Use 'cmdy help' for details."

var rootCmd = &cobra.Command{
	Use:   "cmdy",
	Short: "cmdy runs saved sets of shell commands",
	Long:  "cmdy keeps named command sets and runs them in a chosen directory",
	// Unknown commands fall through to Run and print the usage line.
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), usageLine)
	},
}

func init() {
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			defaultHelp(cmd, args)
			return
		}
		printHelp(cmd.OutOrStdout())
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func printHelp(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\n%s\n", style.Header.Render("cmdy CLI - Enhanced Command Manager"))
	_, _ = fmt.Fprintln(w, "------------------------------------")
	_, _ = fmt.Fprintln(w, "cmdy run             - Run a command set")
	_, _ = fmt.Fprintln(w, "cmdy list [query]    - List all command sets")
	_, _ = fmt.Fprintln(w, "cmdy logs            - View execution logs")
	_, _ = fmt.Fprintln(w, "cmdy delete <name>   - Delete a command set")
	_, _ = fmt.Fprintln(w, "cmdy history [name]  - Show recent runs")
	_, _ = fmt.Fprintln(w, "cmdy export <path>   - Write the configuration to a file")
	_, _ = fmt.Fprintln(w, "cmdy version         - Print the version")
	_, _ = fmt.Fprintln(w, "cmdy help            - Show this help message")
	_, _ = fmt.Fprintln(w)
}

// Execute executes the root command
func Execute() {
	logging.Setup(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
