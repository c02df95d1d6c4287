package shell

import _ "embed"

// Embedded shell completion templates, compiled into the binary at
// build time. Each template takes the manager and runner command names
// as fmt verbs %[1]s and %[2]s.

//go:embed templates/completion/bash.tmpl
var bashTemplate string

//go:embed templates/completion/zsh.tmpl
var zshTemplate string
