package completion

// scriptArgCommands are the manager subcommands that take a script name
// as their argument. "new" and "list" are deliberately absent: a new
// script has no name to complete yet, and list takes no argument.
var scriptArgCommands = map[string]bool{
	"run":       true,
	"edit":      true,
	"install":   true,
	"get":       true,
	"rm":        true,
	"uninstall": true,
}

// Classify maps a word position to a completion mode.
//
// Word index 1 completes the verb, index 2 completes the script name,
// everything after that is opaque to us. For the runner the first
// argument is a script or file and the rest belongs to the invoked
// script. Unmatched positions always classify as ModeNone; Classify
// never fails.
func Classify(tool Tool, cword int, prev string) Mode {
	switch tool {
	case ToolManager:
		switch {
		case cword <= 1:
			return ModeSubcommands
		case cword == 2 && scriptArgCommands[prev]:
			return ModeScriptNames
		default:
			return ModeNone
		}
	case ToolRunner:
		if cword <= 1 {
			return ModeScriptOrPath
		}
		return ModePathOnly
	}
	return ModeNone
}
