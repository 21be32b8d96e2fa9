// Package runner executes a command set: commands run one after another in
// a directory, the set stops at the first failing command, and only a fully
// completed set is written to the execution log.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/VoxDroid/cmdy/internal/executor"
	"github.com/VoxDroid/cmdy/internal/history"
	"github.com/VoxDroid/cmdy/internal/registry"
	"github.com/VoxDroid/cmdy/internal/spinner"
	"github.com/VoxDroid/cmdy/internal/style"
)

// ExecutionLog receives one entry per completed command set.
type ExecutionLog interface {
	Append(name string) error
}

// PolicySource decides how each command is run. *registry.Config
// implements it.
type PolicySource interface {
	PolicyFor(command string) registry.RunPolicy
}

// Result describes how far a command set got.
type Result struct {
	Completed     bool
	CommandsRun   int
	FailedCommand string
}

// Runner runs command sets. Exec and Log are required; History is optional.
type Runner struct {
	Exec    executor.Runner
	Log     ExecutionLog
	History history.Recorder

	Out io.Writer
	Err io.Writer

	// SpinnerInterval overrides the spinner frame delay (tests).
	SpinnerInterval time.Duration

	now func() time.Time
}

// New returns a Runner writing progress to stdout and failures to stderr.
func New(exec executor.Runner, execLog ExecutionLog, hist history.Recorder) *Runner {
	return &Runner{Exec: exec, Log: execLog, History: hist, Out: os.Stdout, Err: os.Stderr}
}

// Run executes set in dir. A command exiting non-zero stops the set and is
// reported through Result; the returned error is reserved for failures that
// leave the environment in an unknown state (shell missing, process that
// cannot be started or killed, log not writable).
func (r *Runner) Run(ctx context.Context, policies PolicySource, set registry.CommandSet, dir string) (Result, error) {
	started := r.clock()
	var res Result

	_, _ = fmt.Fprintf(r.out(), "\n%s %s\n", style.Header.Render("Executing command set:"), set.Name)
	for i, c := range set.Commands {
		_, _ = fmt.Fprintf(r.out(), "Running [%d/%d]: %s\n", i+1, len(set.Commands), c)

		p := policies.PolicyFor(c)
		if p.Mode == registry.ModeTimeboxed {
			if err := r.runTimeboxed(ctx, c, dir, time.Duration(p.Duration)); err != nil {
				res.FailedCommand = c
				r.record(set, dir, started, res)
				return res, err
			}
			res.CommandsRun++
			continue
		}

		if err := r.Exec.Execute(ctx, c, dir); err != nil {
			res.FailedCommand = c
			r.record(set, dir, started, res)
			var exitErr *executor.ExitError
			if errors.As(err, &exitErr) {
				_, _ = fmt.Fprintf(r.errOut(), "%s %s\n", style.Failure.Render("Command failed:"), c)
				return res, nil
			}
			return res, err
		}
		res.CommandsRun++
	}

	_, _ = fmt.Fprintln(r.out(), style.Success.Render("All commands executed successfully!"))
	if err := r.Log.Append(set.Name); err != nil {
		r.record(set, dir, started, res)
		return res, err
	}
	res.Completed = true
	r.record(set, dir, started, res)
	return res, nil
}

// runTimeboxed starts command, lets it run for d with a spinner on screen,
// then kills it. The spinner is joined before the kill so nothing it prints
// can land after this call returns. Cancelling ctx cuts the wait short and
// aborts the set once the process is gone.
func (r *Runner) runTimeboxed(ctx context.Context, command, dir string, d time.Duration) error {
	proc, err := r.Exec.Start(command, dir)
	if err != nil {
		return fmt.Errorf("start %q: %w", command, err)
	}

	sp := spinner.New(r.out(), fmt.Sprintf("Running %s...", command), "Complete!").WithInterval(r.SpinnerInterval)
	sp.Start()

	t := time.NewTimer(d)
	interrupted := false
	select {
	case <-t.C:
	case <-ctx.Done():
		t.Stop()
		interrupted = true
	}

	sp.RequestStop()
	sp.AwaitStopped()

	if err := proc.Kill(); err != nil {
		return fmt.Errorf("stop %q (pid %d): %w", command, proc.Pid(), err)
	}
	if err := proc.Wait(); err != nil {
		log.WithError(err).WithField("cmd", command).Debug("timeboxed process exited")
	}
	if interrupted {
		return fmt.Errorf("interrupted while running %q: %w", command, ctx.Err())
	}
	_, _ = fmt.Fprintf(r.out(), "%s stopped after %s.\n", command, d)
	return nil
}

func (r *Runner) record(set registry.CommandSet, dir string, started time.Time, res Result) {
	if r.History == nil {
		return
	}
	status := history.StatusFailed
	if res.Completed {
		status = history.StatusCompleted
	}
	_, err := r.History.Record(history.Record{
		Name:          set.Name,
		Directory:     dir,
		Status:        status,
		FailedCommand: res.FailedCommand,
		CommandsRun:   res.CommandsRun,
		StartedAt:     started,
		Duration:      r.clock().Sub(started),
	})
	if err != nil {
		log.WithError(err).WithField("set", set.Name).Warn("could not record run history")
	}
}

func (r *Runner) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}

func (r *Runner) errOut() io.Writer {
	if r.Err == nil {
		return io.Discard
	}
	return r.Err
}
