package completion

import "context"

// ExecRegistry queries the manager's registry by spawning its complete
// subcommand (`taku complete <prefix>`). One process per request, no
// retries. The subprocess boundary is deliberate: the registry storage
// format is owned by the manager binary, not by the completer.
type ExecRegistry struct {
	bin string
}

// NewExecRegistry creates a registry backed by the given manager binary.
// An empty bin falls back to "taku" resolved via PATH.
func NewExecRegistry(bin string) *ExecRegistry {
	if bin == "" {
		bin = string(ToolManager)
	}
	return &ExecRegistry{bin: bin}
}

// Complete invokes the manager's complete subcommand and tokenizes its
// stdout. Exit status and stderr of the subprocess are not inspected
// beyond the returned error; callers treat any error as "no candidates".
func (r *ExecRegistry) Complete(prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultQueryTimeout)
	defer cancel()

	output, err := execWithTimeout(ctx, r.bin, "complete", prefix)
	if err != nil {
		return nil, err
	}
	return splitCandidates(output), nil
}
