package launch

import (
	"fmt"
	"os/exec"
	"sync"
	"syscall"
)

// CommandRunner defines an interface for spawning launched programs.
// This allows for mocking in tests and dependency injection.
type CommandRunner interface {
	// CommandExists checks if a command is available in PATH
	CommandExists(name string) bool

	// StartDetached starts a command in its own session and returns
	// without waiting for it. The launcher must never block on, or be
	// tied to, the program it launched.
	StartDetached(name string, args ...string) error
}

// OSCommandRunner is the default implementation using os/exec
type OSCommandRunner struct {
	commandCache sync.Map // map[string]bool
}

// NewOSCommandRunner creates a new OSCommandRunner instance
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// CommandExists checks if a command is available in PATH
func (r *OSCommandRunner) CommandExists(name string) bool {
	if cached, ok := r.commandCache.Load(name); ok {
		if exists, ok := cached.(bool); ok {
			return exists
		}
		r.commandCache.Delete(name)
	}

	_, err := exec.LookPath(name)
	exists := err == nil
	r.commandCache.Store(name, exists)
	return exists
}

// StartDetached starts a command detached from the launcher's
// controlling terminal. Setsid puts it in a fresh session so closing
// the launcher never takes the launched program down with it.
func (r *OSCommandRunner) StartDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %q: %w", name, err)
	}

	// The child is on its own from here; releasing avoids leaving a
	// zombie behind when it exits after the launcher does.
	return cmd.Process.Release()
}
