// Package version carries the build identity of the chd binary.
package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version is the semantic version of chd.
const Version = "1.1.0"

// Stamped at build time:
//
//	go build -ldflags "-X chd/internal/version.GitCommit=$(git rev-parse --short HEAD) \
//	    -X chd/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// GitCommit is the short commit hash of the build; empty for local builds.
	GitCommit = ""

	// BuildDate is the build timestamp in ISO-8601; empty for local builds.
	BuildDate = ""
)

// Colored renders the version with per-component coloring for terminal
// output. Color is dropped automatically on non-terminals.
func Colored() string {
	styles := []*color.Color{
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}

	parts := strings.SplitN(Version, ".", len(styles))
	for i, p := range parts {
		parts[i] = styles[i].Sprint(p)
	}
	return strings.Join(parts, ".")
}
