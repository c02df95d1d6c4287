package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/taku-sh/taku/internal/logger"
	"github.com/taku-sh/taku/internal/script"
	"github.com/taku-sh/taku/internal/terrors"
)

// Run executes a stored script, replacing the current process so the
// script's exit status, signals and streams are the user's own.
func Run(store *script.Store, name string, args []string, log *logger.Logger) error {
	if !store.Exists(name) {
		return terrors.NewNotFoundError(name, fmt.Sprintf("script '%s' not found", name))
	}

	path, err := filepath.Abs(store.Path(name))
	if err != nil {
		return fmt.Errorf("failed to resolve script path: %w", err)
	}

	if log != nil {
		log.Debug().Str("script", name).Str("path", path).Int("args", len(args)).Msg("Executing script")
	}

	return execFile(path, args)
}

// RunTarget implements the runner semantics: the target resolves
// through the store when it names a known script, otherwise it is
// treated as a plain file path.
func RunTarget(store *script.Store, target string, args []string, log *logger.Logger) error {
	if store.Exists(target) {
		return Run(store, target, args, log)
	}

	path, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if _, err := os.Stat(path); err != nil {
		return terrors.NewNotFoundError(target, fmt.Sprintf("no script or file named '%s'", target))
	}

	if log != nil {
		log.Debug().Str("path", path).Int("args", len(args)).Msg("Executing file")
	}

	return execFile(path, args)
}

// execFile replaces the current process with the target executable.
// On platforms without exec semantics this falls back to running the
// file as a child and propagating its exit code.
func execFile(path string, args []string) error {
	argv := append([]string{path}, args...)

	err := syscall.Exec(path, argv, os.Environ())
	if err == nil {
		return nil
	}

	// syscall.Exec only returns on failure. ENOSYS means the platform
	// cannot replace the process image; run as a child instead.
	if err == syscall.ENOSYS {
		cmd := exec.Command(path, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if runErr := cmd.Run(); runErr != nil {
			if exitErr, ok := runErr.(*exec.ExitError); ok {
				os.Exit(exitErr.ExitCode())
			}
			return terrors.NewExecutionError(path, "failed to run script", runErr)
		}
		return nil
	}

	return terrors.NewExecutionError(path, "failed to execute script", err)
}
