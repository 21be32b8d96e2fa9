// Package executor runs single shell commands, either to completion in the
// foreground or as a background process the caller kills.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	log "github.com/sirupsen/logrus"
)

// EnvShell overrides the shell used to run commands.
const EnvShell = "CMDY_SHELL"

// ExitError reports a command that ran but exited with a non-zero status.
// Any other error from Execute means the shell itself could not be run.
type ExitError struct {
	Command string
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Process is a command started in the background.
type Process interface {
	// Kill forcibly terminates the command and anything it spawned.
	Kill() error
	// Wait reaps the process. Its error is informational only after Kill.
	Wait() error
	Pid() int
}

// Runner is an interface for executing commands. It allows tests to inject
// fake implementations without running real shell commands.
type Runner interface {
	Execute(ctx context.Context, command string, cwd string) error
	Start(command string, cwd string) (Process, error)
}

// Executor runs commands through a shell with the given stdio. Nil streams
// are connected to the null device.
type Executor struct {
	Shell  string // optional override (e.g., "bash", "pwsh")
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Executor attached to the terminal, honouring CMDY_SHELL.
func New() *Executor {
	return &Executor{
		Shell:  os.Getenv(EnvShell),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs command to completion in cwd. A non-zero exit is returned as
// *ExitError.
func (e *Executor) Execute(ctx context.Context, command string, cwd string) error {
	cmd, err := e.command(ctx, command, cwd)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"cmd": command, "dir": cwd}).Debug("exec")
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: command, Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}

// Start launches command in cwd without waiting for it. Its stdin is the null
// device whatever Stdin is set to.
func (e *Executor) Start(command string, cwd string) (Process, error) {
	cmd, err := e.command(context.Background(), command, cwd)
	if err != nil {
		return nil, err
	}
	// A background process group reading the terminal is stopped with
	// SIGTTIN, so it gets the null device instead.
	cmd.Stdin = nil
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %q: %w", command, err)
	}
	log.WithFields(log.Fields{"cmd": command, "dir": cwd, "pid": cmd.Process.Pid}).Debug("started background process")
	return &process{cmd: cmd}, nil
}

func (e *Executor) command(ctx context.Context, command, cwd string) (*exec.Cmd, error) {
	shell, args := shellInvocation(command, e.Shell)
	if _, err := exec.LookPath(shell); err != nil {
		return nil, fmt.Errorf("shell not found in PATH: %s", shell)
	}
	cmd := exec.CommandContext(ctx, shell, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd, nil
}

// shellInvocation returns the shell executable and arguments for the platform.
// Optional `override` lets callers request an alternate shell.
func shellInvocation(command string, override string) (string, []string) {
	switch override {
	case "":
	case "pwsh", "powershell":
		return override, []string{"-Command", command}
	case "cmd":
		return "cmd", []string{"/C", command}
	default:
		return override, []string{"-c", command}
	}
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

type process struct {
	cmd *exec.Cmd
}

func (p *process) Pid() int { return p.cmd.Process.Pid }

func (p *process) Kill() error { return kill(p.cmd) }

func (p *process) Wait() error { return p.cmd.Wait() }
