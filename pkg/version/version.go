// Package version derives the build version for log banners and
// user-agent strings. An -ldflags override wins; otherwise the VCS
// revision from debug.BuildInfo is used, falling back to "dev".
package version

import "runtime/debug"

// AppName prefixes every version string.
const AppName = "rcad"

// commitOverride is set via -ldflags for container builds without .git.
var commitOverride string

// GitCommit is the short (8 char) commit hash, or "dev" when no build
// info is available, as under `go test`.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return short(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "rcad/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
