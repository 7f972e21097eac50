package buildversion

import (
	"fmt"
	"runtime"
	"time"
)

var (
	version   string
	gitSHA    string
	buildTime string

	build Build
)

type Build struct {
	Version   string    `json:"version,omitempty"`
	GitSHA    string    `json:"git,omitempty"`
	BuildTime time.Time `json:"buildTime,omitempty"`
	GoVersion string    `json:"goVersion,omitempty"`
}

func init() {
	build.Version = version
	if len(gitSHA) >= 7 {
		build.GitSHA = gitSHA[:7]
	}
	if t, err := time.Parse(time.RFC3339, buildTime); err == nil {
		build.BuildTime = t
	}
	build.GoVersion = runtime.Version()
}

// GetBuild returns the build metadata stamped in at link time.
func GetBuild() Build {
	return build
}

func Version() string {
	return build.Version
}

func GitSHA() string {
	return build.GitSHA
}

func BuildTime() time.Time {
	return build.BuildTime
}

// GetUserAgent returns the User-Agent string sent with outbound requests.
func GetUserAgent() string {
	return fmt.Sprintf("UpdateDotnetSdk/%s (%s %s)", Version(), runtime.GOOS, runtime.GOARCH)
}
