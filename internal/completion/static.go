package completion

// subcommands is the fixed vocabulary of manager subcommands offered at
// word index 1.
var subcommands = []string{
	"get",
	"new",
	"edit",
	"rm",
	"run",
	"list",
	"install",
	"uninstall",
}

// Subcommands returns the static manager subcommand vocabulary. It has
// no side effects and no failure mode.
func Subcommands() []string {
	out := make([]string, len(subcommands))
	copy(out, subcommands)
	return out
}
