// Package version reports the build identity of laptop-advisor.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/laptop-advisor/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/laptop-advisor/internal/version.Commit=abc1234"
//
// Empty values are filled from the VCS stamp in the binary's build info.
var (
	Version = ""
	Commit  = ""
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fillFromSettings(info.Settings)
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromSettings derives Commit (short hash, "-dirty" when modified) and a
// date-stamped dev Version from VCS build settings.
func fillFromSettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if rev := vcs["vcs.revision"]; Commit == "" && rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if vcs["vcs.modified"] == "true" {
			rev += "-dirty"
		}
		Commit = rev
	}

	// vcs.time is RFC 3339; the date part is enough
	if t := vcs["vcs.time"]; Version == "" && len(t) >= 10 {
		Version = "dev-" + t[:4] + t[5:7] + t[8:10]
	}
}

// Get returns the build identity
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
