// Package version provides build version information embedding.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/isokit/isokit/version.Version=1.0.0"
package version

import "runtime/debug"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// String returns the version, suffixed with the short commit when known.
func String() string {
	v := Version
	if GitCommit != "" {
		commit := GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		v += "+" + commit
	}
	return v
}

// UserAgent returns the default User-Agent value for outbound requests.
func UserAgent() string {
	return "isokit/" + String()
}

// GoVersion returns the Go toolchain version the binary was built with.
func GoVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return ""
}
