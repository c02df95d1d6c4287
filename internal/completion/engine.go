package completion

// Engine resolves completion requests for one tool. It is a pure
// function of (request, registry snapshot): there is no shared state
// between invocations and nothing is cached, so identical requests
// against an unchanged registry produce identical results.
type Engine struct {
	tool     Tool
	registry Registry
}

// NewEngine creates an engine for the given tool backed by the given
// registry. The registry may be nil, in which case dynamic modes
// degrade to their fallback behavior.
func NewEngine(tool Tool, registry Registry) *Engine {
	return &Engine{tool: tool, registry: registry}
}

// Complete classifies the cursor position, gathers candidates from the
// selected source(s) in priority order and applies the prefix filter.
// It resolves in a single pass and never fails: every error on the way
// degrades to fewer or no suggestions.
func (e *Engine) Complete(req Request) []string {
	cur := req.CurrentWord()
	mode := Classify(e.tool, req.CWord, req.PreviousWord())

	switch mode {
	case ModeSubcommands:
		return Filter(Subcommands(), cur)
	case ModeScriptNames:
		return Filter(e.queryRegistry(cur), cur)
	case ModeScriptOrPath:
		if names := e.queryRegistry(cur); len(names) > 0 {
			return Filter(names, cur)
		}
		return ScanPath(cur)
	case ModePathOnly:
		return ScanPath(cur)
	}

	return []string{}
}

// queryRegistry asks the registry for names matching the prefix. A
// missing registry or a failed query is absorbed into an empty result
// so the caller's fallback policy applies.
func (e *Engine) queryRegistry(prefix string) []string {
	if e.registry == nil {
		return nil
	}
	names, err := e.registry.Complete(prefix)
	if err != nil {
		return nil
	}
	return names
}
