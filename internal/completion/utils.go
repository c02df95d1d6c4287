package completion

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultQueryTimeout bounds the registry subprocess so a slow or
	// hung query never blocks the interactive shell.
	DefaultQueryTimeout = 3 * time.Second
	// MaxOutputSize is the maximum registry output we read (1MB).
	MaxOutputSize = 1024 * 1024
)

// execWithTimeout runs a command and returns its stdout, enforcing
// DefaultQueryTimeout when the caller passes a nil context.
func execWithTimeout(ctx context.Context, name string, args ...string) ([]byte, error) {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultQueryTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("query timeout after %v: %w", DefaultQueryTimeout, err)
		}
		return nil, err
	}

	if len(output) > MaxOutputSize {
		return output[:MaxOutputSize], nil
	}

	return output, nil
}

// splitCandidates splits registry output into discrete candidate tokens
// on whitespace boundaries. A registry may return several names on one
// line or one per line; both tokenize the same way. Names containing
// whitespace cannot survive this split, which is why the store rejects
// them at creation time.
func splitCandidates(output []byte) []string {
	candidates := []string{}
	candidates = append(candidates, strings.Fields(string(output))...)
	return candidates
}

// Filter retains candidates that start with the typed prefix. Matching
// is case-sensitive, order is preserved and duplicates are kept.
func Filter(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}

	filtered := []string{}
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
