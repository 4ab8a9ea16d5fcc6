// Package buildinfo carries the version stamped into pacmaze at link time:
//
//	go build -ldflags "-X github.com/matzehuels/pacmaze/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/pacmaze/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/pacmaze
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the multi-line form printed by `pacmaze version`.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s %s/%s",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Template is the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s)\n", Version, Commit)
}

// UserAgent identifies pacmaze in outgoing HTTP requests.
func UserAgent() string {
	return "pacmaze/" + Version
}
