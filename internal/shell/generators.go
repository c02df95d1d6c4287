// Package shell generates the per-shell completion functions that wire
// taku and tax into the user's interactive shell.
package shell

import (
	"fmt"

	"github.com/taku-sh/taku/internal/completion"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
)

// CodeGenerator produces shell-specific completion registration code.
type CodeGenerator interface {
	// GenerateCompletionScript returns the completion functions for
	// both tools, ready to be eval'd or sourced by the shell.
	GenerateCompletionScript() string
	// Name returns the shell name (bash, zsh).
	Name() string
}

// BashCodeGenerator generates bash completion code.
type BashCodeGenerator struct{}

// Name returns the shell name for bash.
func (b *BashCodeGenerator) Name() string {
	return shellBash
}

// GenerateCompletionScript generates the bash completion functions.
func (b *BashCodeGenerator) GenerateCompletionScript() string {
	return fmt.Sprintf(bashTemplate, completion.ToolManager, completion.ToolRunner)
}

// ZshCodeGenerator generates zsh completion code.
type ZshCodeGenerator struct{}

// Name returns the shell name for zsh.
func (z *ZshCodeGenerator) Name() string {
	return shellZsh
}

// GenerateCompletionScript generates the zsh completion functions.
func (z *ZshCodeGenerator) GenerateCompletionScript() string {
	return fmt.Sprintf(zshTemplate, completion.ToolManager, completion.ToolRunner)
}

// NewGenerator creates the code generator for the given shell.
func NewGenerator(shell string) (CodeGenerator, error) {
	switch shell {
	case shellBash:
		return &BashCodeGenerator{}, nil
	case shellZsh:
		return &ZshCodeGenerator{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell: %s (use bash or zsh)", shell)
	}
}
