//go:build windows

package executor

import "os/exec"

// detach is a no-op on Windows; the shell is killed directly.
func detach(_ *exec.Cmd) {}

func kill(cmd *exec.Cmd) error { return cmd.Process.Kill() }
