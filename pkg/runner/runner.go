// Package runner executes external commands with a bounded timeout and
// reports the outcome as a Result. Run never returns an error: failures to
// start or finish a command are folded into the Result with ExitInvocationFailed.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/bnema/ops-status-dashboard/pkg/logger"
)

const (
	// ExitInvocationFailed marks a Result whose command could not be run or
	// did not complete (binary missing, spawn failure, timeout, cancellation).
	ExitInvocationFailed = 999

	// DefaultTimeout applies when Run is called with a non-positive timeout.
	DefaultTimeout = 2 * time.Second

	// defaultWaitDelay bounds how long output pipes are drained after the
	// process is killed, so a child that leaks its pipes to grandchildren
	// cannot hold Run past its timeout.
	defaultWaitDelay = 250 * time.Millisecond
)

// Result is the outcome of a single command invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK reports whether the command ran and exited with status 0.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// InvocationFailed reports whether the command could not be run or completed.
func (r Result) InvocationFailed() bool {
	return r.ExitCode == ExitInvocationFailed
}

// Runner runs an argument vector with a timeout.
type Runner interface {
	Run(ctx context.Context, argv []string, timeout time.Duration) Result
}

// Exec is the os/exec backed Runner.
type Exec struct {
	waitDelay time.Duration
}

// New returns a Runner that spawns real processes.
func New() *Exec {
	return &Exec{waitDelay: defaultWaitDelay}
}

// Run executes argv[0] with argv[1:] as arguments. No shell is involved.
func (e *Exec) Run(ctx context.Context, argv []string, timeout time.Duration) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = invocationFailed(fmt.Sprintf("command execution panicked: %v", r))
		}
	}()

	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return invocationFailed("empty command")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if ctx == nil {
		ctx = context.Background()
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is supplied by callers, never built from a shell string
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = e.waitDelay

	start := time.Now()
	err := cmd.Run()
	res = classify(parent, ctx, argv[0], timeout, err, stdout.String(), stderr.String())

	logger.Debug("Command finished",
		"cmd", argv[0],
		"exit_code", res.ExitCode,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return res
}

func classify(parent, ctx context.Context, name string, timeout time.Duration, err error, stdout, stderr string) Result {
	if err == nil {
		return Result{
			ExitCode: 0,
			Stdout:   strings.TrimSpace(stdout),
			Stderr:   strings.TrimSpace(stderr),
		}
	}

	// The context is checked first: a killed process also surfaces as an ExitError.
	switch {
	case errors.Is(parent.Err(), context.DeadlineExceeded):
		return invocationFailed(fmt.Sprintf("command %q timed out: caller deadline exceeded", name))
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return invocationFailed(fmt.Sprintf("command %q timed out after %s", name, timeout))
	case errors.Is(ctx.Err(), context.Canceled):
		return invocationFailed(fmt.Sprintf("command %q canceled", name))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return invocationFailed(fmt.Sprintf("command %q terminated: %s", name, exitErr.String()))
		}
		return Result{
			ExitCode: code,
			Stdout:   strings.TrimSpace(stdout),
			Stderr:   strings.TrimSpace(stderr),
		}
	}

	return invocationFailed(err.Error())
}

func invocationFailed(diagnostic string) Result {
	return Result{
		ExitCode: ExitInvocationFailed,
		Stdout:   "",
		Stderr:   diagnostic,
	}
}
