package version

import (
	"flag"
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X github.com/longkey1/crybaby/internal/version.Version=..."
var (
	Version   = "dev"
	CommitSHA = ""
	BuildTime = ""
)

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	CommitSHA string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

func Get() BuildInfo {
	v := BuildInfo{
		Version:   Version,
		CommitSHA: CommitSHA,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}

	if flag.Lookup("test.v") != nil {
		v.GoVersion = ""
	}
	return v
}

// Short returns the version number only
func Short() string {
	return Version
}

// Info returns a one-line description of the build
func Info() string {
	info := Get()
	s := fmt.Sprintf("crybaby %s", info.Version)
	if info.CommitSHA != "" {
		s += fmt.Sprintf(" (%s)", info.CommitSHA)
	}
	if info.BuildTime != "" {
		s += fmt.Sprintf(" built %s", info.BuildTime)
	}
	if info.GoVersion != "" {
		s += fmt.Sprintf(" %s", info.GoVersion)
	}
	return s
}
