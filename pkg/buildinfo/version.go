// Package buildinfo carries build-time version metadata, injected via
// ldflags:
//
//	go build -ldflags "-X github.com/synchrolab/synchrogen/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/synchrolab/synchrogen/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/synchrolab/synchrogen/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for unreleased builds.
	Version = "dev"

	// Commit is the git commit SHA the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
