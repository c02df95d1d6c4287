package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompletionWords(t *testing.T) {
	t.Setenv("TAKU_COMP_CWORD", "")

	rawArgs := []string{"taku", "completion", "--", "taku", "run", "de"}
	words, cword := ParseCompletionWords(rawArgs, "completion")
	assert.Equal(t, []string{"taku", "run", "de"}, words)
	assert.Equal(t, 2, cword)
}

func TestParseCompletionWords_CWordFromEnv(t *testing.T) {
	t.Setenv("TAKU_COMP_CWORD", "1")

	rawArgs := []string{"taku", "completion", "--", "taku", "run", "de"}
	words, cword := ParseCompletionWords(rawArgs, "completion")
	assert.Equal(t, []string{"taku", "run", "de"}, words)
	assert.Equal(t, 1, cword)
}

func TestParseCompletionWords_BadEnvFallsBack(t *testing.T) {
	t.Setenv("TAKU_COMP_CWORD", "not-a-number")

	rawArgs := []string{"taku", "completion", "--", "taku", "new"}
	_, cword := ParseCompletionWords(rawArgs, "completion")
	assert.Equal(t, 1, cword)
}

func TestParseCompletionWords_KeepsLaterSeparators(t *testing.T) {
	t.Setenv("TAKU_COMP_CWORD", "")

	// Only the first "--" is the shell's separator; later ones belong
	// to the command line being completed.
	rawArgs := []string{"tax", "completion", "--", "tax", "deploy.sh", "--", "-v"}
	words, _ := ParseCompletionWords(rawArgs, "completion")
	assert.Equal(t, []string{"tax", "deploy.sh", "--", "-v"}, words)
}

func TestParseCompletionWords_NoWords(t *testing.T) {
	t.Setenv("TAKU_COMP_CWORD", "")

	words, cword := ParseCompletionWords([]string{"taku", "completion"}, "completion")
	assert.Empty(t, words)
	assert.Equal(t, -1, cword)
}
