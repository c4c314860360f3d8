// Package misc keeps build identity helpers used by logging and reporting.
package misc

import (
	"runtime/debug"
	"sync"
)

// Set at build time:
// go build -ldflags="-X cssmix/misc.version=... -X cssmix/misc.gitHash=..."
var (
	appName = "cssmix"
	version = "dev"
	gitHash = ""
)

var readBuildInfo = sync.OnceFunc(func() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(gitHash) == 0 {
			gitHash = s.Value
		}
	}
	if version == "dev" && len(bi.Main.Version) > 0 && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
})

// GetAppName returns program name to be used in logs and file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	readBuildInfo()
	return version
}

// GetGitHash returns hash of the git commit program was built from.
func GetGitHash() string {
	readBuildInfo()
	if len(gitHash) == 0 {
		return "unknown"
	}
	return gitHash
}
