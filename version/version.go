// Package version carries the library's build identity. Its main consumer
// is the User-Agent string sent with every query, which the Wikidata Query
// Service user-agent policy requires to identify the client and point at a
// contact URL.
package version

import (
	"fmt"
	"runtime"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// Version is the semantic version (if tagged)
	Version = "0.1.0"
)

// RepoURL is the contact URL embedded in the User-Agent, per the query
// service's access policy.
const RepoURL = "https://github.com/teranos/qntx-wikidata"

// UserAgent returns the agent string identifying this library to the
// query service.
func UserAgent() string {
	return fmt.Sprintf("qntx-wikidata/%s (%s) Go/%s", Version, RepoURL, runtime.Version())
}

// Short returns a short version string with just the commit hash
func Short() string {
	if len(CommitHash) >= 7 {
		return CommitHash[:7]
	}
	return CommitHash
}
