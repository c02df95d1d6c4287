package completion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanPath enumerates filesystem entries matching a partial path,
// mirroring the shell's native path completion: the partial word is
// split into a directory part and a basename prefix, entries of the
// implied directory are prefix-matched, and directories are suggested
// with a trailing slash for further descent.
//
// Any scan failure (missing directory, permission denied) yields an
// empty result rather than an error; a completion provider must never
// print errors into the user's input line.
func ScanPath(partial string) []string {
	dir, base := filepath.Split(partial)

	searchDir := dir
	if searchDir == "" {
		searchDir = "."
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return []string{}
	}

	matches := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		// Hidden entries only show up once the user types the dot.
		if base == "" && strings.HasPrefix(name, ".") {
			continue
		}

		candidate := dir + name
		if entry.IsDir() {
			candidate += string(filepath.Separator)
		}
		matches = append(matches, candidate)
	}

	sort.Strings(matches)
	return matches
}
