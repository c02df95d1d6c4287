package cli

import (
	"fmt"
	"os"

	"github.com/taku-sh/taku/internal/completion"
	"github.com/taku-sh/taku/internal/logger"
	"github.com/taku-sh/taku/internal/script"
	"github.com/taku-sh/taku/internal/timing"
)

// Complete implements the registry query interface: it prints the
// names of stored scripts matching the prefix, one per line. This is
// what external completers (tax among them) invoke as
// `taku complete <prefix>`.
func Complete(store *script.Store, prefix string) error {
	names, err := store.Complete(prefix)
	if err != nil {
		// A broken store means no candidates, never a failed query.
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}

	return nil
}

// CompletionParams contains parameters for the Completion command.
type CompletionParams struct {
	Tool     completion.Tool
	Registry completion.Registry
	LogLevel string
	Words    []string // tokenized command line (COMP_WORDS)
	CWord    int      // index of the word being completed (COMP_CWORD)
}

// Completion resolves a full completion request for one tool and
// writes the reply, one candidate per line, to stdout. All failures
// degrade to an empty reply; nothing is ever printed to stdout except
// candidates.
func Completion(params CompletionParams) error {
	log := logger.New(params.LogLevel, os.Stderr)
	timer := timing.NewTimer()

	if len(params.Words) == 0 {
		return nil
	}

	log.Debug().
		Str("tool", string(params.Tool)).
		Int("words_count", len(params.Words)).
		Int("cword", params.CWord).
		Str("words", fmt.Sprintf("%q", params.Words)).
		Msg("Received completion request")

	engine := completion.NewEngine(params.Tool, params.Registry)

	candidates := engine.Complete(completion.Request{
		Tool:  params.Tool,
		Words: params.Words,
		CWord: params.CWord,
	})

	log.Debug().
		Int("candidates", len(candidates)).
		Dur("elapsed", timer.Elapsed()).
		Msg("Resolved completion request")

	for _, candidate := range candidates {
		fmt.Println(candidate)
	}

	return nil
}

// ParseCompletionWords extracts the completion word list and cursor
// index from raw process arguments. The shell function passes the full
// command line after a "--" separator and the cursor index via the
// TAKU_COMP_CWORD environment variable; without it the cursor defaults
// to the last word.
func ParseCompletionWords(rawArgs []string, commandName string) ([]string, int) {
	var words []string
	found := false
	skipFirstSeparator := true

	for _, arg := range rawArgs {
		if !found {
			if arg == commandName {
				found = true
			}
			continue
		}
		if arg == "--" && skipFirstSeparator {
			skipFirstSeparator = false
			continue
		}
		words = append(words, arg)
	}

	cword := len(words) - 1
	if cwordStr := os.Getenv("TAKU_COMP_CWORD"); cwordStr != "" {
		if _, err := fmt.Sscanf(cwordStr, "%d", &cword); err != nil {
			cword = len(words) - 1
		}
	}

	return words, cword
}
