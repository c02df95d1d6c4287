// Package completion implements context-sensitive tab completion for the
// taku manager and the tax runner.
package completion

// Tool identifies which command line is being completed.
type Tool string

const (
	// ToolManager is the script manager command (taku).
	ToolManager Tool = "taku"
	// ToolRunner is the script runner command (tax).
	ToolRunner Tool = "tax"
)

// Mode selects which candidate sources apply at a word position.
type Mode int

const (
	// ModeNone yields no candidates.
	ModeNone Mode = iota
	// ModeSubcommands completes manager subcommand names.
	ModeSubcommands
	// ModeScriptNames completes script names from the registry.
	ModeScriptNames
	// ModeScriptOrPath completes script names, falling back to paths when
	// the registry yields nothing.
	ModeScriptOrPath
	// ModePathOnly completes filesystem paths unconditionally.
	ModePathOnly
)

// Request describes a single completion invocation: the tokenized command
// line and the index of the word under the cursor. Requests are rebuilt
// from shell state on every invocation and never cached.
type Request struct {
	Tool  Tool
	Words []string
	CWord int
}

// CurrentWord returns the partial word under the cursor, or "" when the
// cursor sits past the last typed word.
func (r Request) CurrentWord() string {
	if r.CWord >= 0 && r.CWord < len(r.Words) {
		return r.Words[r.CWord]
	}
	return ""
}

// PreviousWord returns the word before the cursor, or "" at position zero.
func (r Request) PreviousWord() string {
	if r.CWord >= 1 && r.CWord-1 < len(r.Words) {
		return r.Words[r.CWord-1]
	}
	return ""
}

// Registry is the capability interface over the manager's script registry.
// The storage format is owned by the manager tool; completion only ever
// asks for names matching a prefix. Tests supply a fake instead of
// spawning processes.
type Registry interface {
	Complete(prefix string) ([]string, error)
}
