// Package version provides build information for mixerd. Version is also the
// daemon_version reported in every status snapshot.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X ...".
var (
	Name      = "mixerd"
	Version   = "0.1.0"
	BuildTime = ""
	GitCommit = ""
)

// Info is the payload of /api/v1/version.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// GetInfo returns the current build information. When the commit was not
// injected by the linker it falls back to the VCS stamp of the binary.
func GetInfo() Info {
	info := Info{
		Name:      Name,
		Version:   Version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if info.GitCommit == "" {
		info.GitCommit = vcsRevision()
	}
	return info
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// String returns e.g. "mixerd v0.1.0 (1a2b3c4) built 2024-01-01".
func (i Info) String() string {
	s := fmt.Sprintf("%s v%s", i.Name, i.Version)
	if i.GitCommit != "" {
		s += fmt.Sprintf(" (%s)", i.GitCommit[:min(7, len(i.GitCommit))])
	}
	if i.BuildTime != "" {
		s += fmt.Sprintf(" built %s", i.BuildTime)
	}
	return s
}
