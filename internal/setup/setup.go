// Package setup installs the taku completion hook into shell rc files.
package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/taku-sh/taku/internal/cli"
)

const (
	// HookMarkerStart is the starting marker for the taku block in rc files.
	HookMarkerStart = "# taku shell completion - START"
	// HookMarkerEnd is the ending marker for the taku block in rc files.
	HookMarkerEnd = "# taku shell completion - END"
)

// Result represents the result of a setup operation.
type Result struct {
	RCFile  string
	Updated bool
	Message string
}

// GetRCFilePath returns the rc file path for the given shell.
func GetRCFilePath(shell string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch shell {
	case cli.ShellBash:
		return filepath.Join(home, ".bashrc"), nil
	case cli.ShellZsh:
		return filepath.Join(home, ".zshrc"), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (use bash or zsh)", shell)
	}
}

// hookBlock builds the marked block appended to the rc file. The block
// evals the hook output at shell startup so an upgraded binary never
// leaves a stale completion function behind.
func hookBlock(shell string) string {
	return fmt.Sprintf(`%s
command -v taku >/dev/null 2>&1 && eval "$(taku hook --shell %s)"
%s`, HookMarkerStart, shell, HookMarkerEnd)
}

// InstallHook installs or refreshes the completion hook in the shell's
// rc file. Installation is idempotent.
func InstallHook(shell string) (*Result, error) {
	rcFile, err := GetRCFilePath(shell)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(rcFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read rc file: %w", err)
	}

	content := string(data)
	block := hookBlock(shell)

	if containsMarkers(content, HookMarkerStart, HookMarkerEnd) {
		refreshed := removeMarkedSection(content, HookMarkerStart, HookMarkerEnd)
		refreshed = appendBlock(refreshed, block)
		if refreshed == content {
			return &Result{
				RCFile:  rcFile,
				Updated: false,
				Message: fmt.Sprintf("✓ Completion hook already installed in %s", rcFile),
			}, nil
		}

		if err := atomicWrite(rcFile, []byte(refreshed)); err != nil {
			return nil, fmt.Errorf("failed to update rc file: %w", err)
		}
		return &Result{
			RCFile:  rcFile,
			Updated: true,
			Message: fmt.Sprintf("✓ Refreshed completion hook in %s", rcFile),
		}, nil
	}

	newContent := appendBlock(content, block)
	if err := atomicWrite(rcFile, []byte(newContent)); err != nil {
		return nil, fmt.Errorf("failed to update rc file: %w", err)
	}

	return &Result{
		RCFile:  rcFile,
		Updated: true,
		Message: fmt.Sprintf("✓ Installed completion hook in %s", rcFile),
	}, nil
}

// UninstallHook removes the completion hook from the shell's rc file.
func UninstallHook(shell string) (*Result, error) {
	rcFile, err := GetRCFilePath(shell)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(rcFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &Result{
				RCFile:  rcFile,
				Updated: false,
				Message: "✓ Nothing to uninstall",
			}, nil
		}
		return nil, fmt.Errorf("failed to read rc file: %w", err)
	}

	content := string(data)
	if !containsMarkers(content, HookMarkerStart, HookMarkerEnd) {
		return &Result{
			RCFile:  rcFile,
			Updated: false,
			Message: "✓ Completion hook is not installed",
		}, nil
	}

	newContent := removeMarkedSection(content, HookMarkerStart, HookMarkerEnd)
	if err := atomicWrite(rcFile, []byte(newContent)); err != nil {
		return nil, fmt.Errorf("failed to update rc file: %w", err)
	}

	return &Result{
		RCFile:  rcFile,
		Updated: true,
		Message: fmt.Sprintf("✓ Removed completion hook from %s", rcFile),
	}, nil
}

// IsHookInstalled checks whether the rc file carries the taku block.
func IsHookInstalled(shell string) (bool, error) {
	rcFile, err := GetRCFilePath(shell)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(rcFile)
	if err != nil {
		return false, nil
	}

	return containsMarkers(string(data), HookMarkerStart, HookMarkerEnd), nil
}

// appendBlock appends the hook block, keeping a blank line between it
// and existing content.
func appendBlock(content, block string) string {
	if len(content) > 0 && content[len(content)-1] != '\n' {
		content += "\n"
	}
	if len(content) > 0 {
		content += "\n"
	}
	return content + block + "\n"
}
