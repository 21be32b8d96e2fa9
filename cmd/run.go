package cmd

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/cmdy/internal/db"
	"github.com/VoxDroid/cmdy/internal/execlog"
	"github.com/VoxDroid/cmdy/internal/executor"
	"github.com/VoxDroid/cmdy/internal/history"
	"github.com/VoxDroid/cmdy/internal/prompt"
	"github.com/VoxDroid/cmdy/internal/registry"
	"github.com/VoxDroid/cmdy/internal/runner"
	"github.com/VoxDroid/cmdy/internal/selector"
)

// newExecutor is swapped in tests.
var newExecutor = func() executor.Runner { return executor.New() }

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pick a directory and a command set, then run it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := registry.Open()
		if err != nil {
			return err
		}
		cfg, err := store.Load()
		if err != nil {
			return err
		}

		sel := selector.New(prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()), store)
		sel.Out = cmd.ErrOrStderr()
		dir, err := sel.Directory(cfg)
		if err != nil {
			return err
		}
		set, err := sel.CommandSet(cfg)
		if err != nil {
			return err
		}

		elog, err := execlog.Open()
		if err != nil {
			return err
		}

		var hist history.Recorder
		if conn, err := db.InitDB(); err != nil {
			log.WithError(err).Warn("run history disabled")
		} else {
			defer func() { _ = conn.Close() }()
			hist = history.NewRepository(conn)
		}

		r := runner.New(newExecutor(), elog, hist)
		r.Out = cmd.OutOrStdout()
		r.Err = cmd.ErrOrStderr()

		// Ctrl+C stops a timeboxed command cleanly instead of killing cmdy.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		_, err = r.Run(ctx, cfg, set, dir)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
