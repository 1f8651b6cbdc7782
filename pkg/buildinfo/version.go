// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/cellchart/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/cellchart/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/cellchart/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// shortCommit is the number of commit SHA characters shown by Line.
const shortCommit = 7

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Line returns the build information on one line, with the commit shortened.
// Example: "v1.2.3 (a1b2c3d, 2026-01-02T15:04:05Z)"
func Line() string {
	commit := Commit
	if len(commit) > shortCommit {
		commit = commit[:shortCommit]
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
