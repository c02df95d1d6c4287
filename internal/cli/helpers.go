// Package cli implements the taku and tax command actions.
package cli

import (
	"os"
	"os/exec"
	"strings"
)

const (
	// ShellBash represents the bash shell.
	ShellBash = "bash"
	// ShellZsh represents the zsh shell.
	ShellZsh = "zsh"
)

// DetectShell determines the shell type from the flag or environment.
func DetectShell(shellFlag string) string {
	if shellFlag != "auto" {
		return shellFlag
	}

	shell := os.Getenv("SHELL")
	if strings.Contains(shell, "zsh") {
		return ShellZsh
	}
	if strings.Contains(shell, "bash") {
		return ShellBash
	}

	return ShellBash
}

// resolveEditor picks the editor to use: explicit config first, then
// $EDITOR/$VISUAL, then whichever common editor is on PATH.
func resolveEditor(configured string) string {
	if configured != "" {
		return configured
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}

	for _, e := range []string{"nano", "vim", "vi"} {
		if _, err := exec.LookPath(e); err == nil {
			return e
		}
	}

	return ""
}
