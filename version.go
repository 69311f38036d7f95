package employee

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionFile string

// Version is the current version of the employee CRUD program.
var Version = strings.TrimSpace(versionFile)
