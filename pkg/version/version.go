// Package version exposes build information injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

// Info contains version information
type Info struct {
	Version   string `json:"version" yaml:"version"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	Commit    string `json:"commit" yaml:"commit"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the current version info
func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("mediadata %s (commit: %s, built: %s, %s %s)",
		i.Version, i.Commit, i.BuildTime, i.GoVersion, i.Platform)
}

// Short returns the bare version, used by `mediadata --version`
func Short() string {
	return Version
}

// Full returns the long form printed by `mediadata version`
func Full() string {
	return Get().String()
}
