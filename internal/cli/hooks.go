package cli

import (
	"github.com/taku-sh/taku/internal/shell"
)

// GenerateHookCode generates the completion registration code for the
// specified shell. The output is meant to be eval'd from the user's rc
// file.
func GenerateHookCode(shellName string) (string, error) {
	gen, err := shell.NewGenerator(shellName)
	if err != nil {
		return "", err
	}
	return gen.GenerateCompletionScript(), nil
}
