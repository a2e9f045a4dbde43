// Package execx is the single subprocess layer for cppforge. Every external
// tool (cmake, ninja, make, docker, the built executable) is invoked through
// a Runner so that command construction, stdio wiring, and exit-status
// handling stay uniform across call sites.
package execx

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Command describes one external tool invocation.
type Command struct {
	Name string
	Args []string
	// Env entries are appended to the parent environment.
	Env []string
	// Quiet discards the child's stdout and stderr instead of inheriting
	// the console. Used for preflight probes only.
	Quiet bool
}

// Runner executes a command synchronously, blocking until the child exits.
// The returned error is non-nil for a non-zero exit status or a failure to
// start; there are no timeouts and no retries.
type Runner interface {
	Run(cmd Command) error
}

// ExecRunner runs commands via os/exec with inherited stdio.
type ExecRunner struct{}

func (ExecRunner) Run(c Command) error {
	cmd := exec.Command(c.Name, c.Args...)
	if c.Quiet {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	return cmd.Run()
}

// ExitStatus extracts the child's exit status from a Run error. Returns -1
// when the error does not carry one (e.g. the command never started).
func ExitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// IsExit reports whether err is a plain non-zero exit, as opposed to a
// failure to start the command at all.
func IsExit(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// LookPath reports whether the named tool is on PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
