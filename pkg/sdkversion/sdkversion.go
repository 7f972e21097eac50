package sdkversion

import (
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
)

const (
	UpdateTypeMajor = "major"
	UpdateTypeMinor = "minor"
	UpdateTypePatch = "patch"
)

// InvalidVersionError is returned when a version string cannot be parsed or
// does not carry enough segments for the requested operation.
type InvalidVersionError struct {
	Value  string
	Reason string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid SDK version %q: %s", e.Value, e.Reason)
}

// Version is a parsed .NET SDK or runtime version. The patch segment may carry
// a pre-release suffix ("8.0.100-preview.2.23619.3").
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease string
}

// Parse parses a dotted version string into a Version.
func Parse(value string) (Version, error) {
	sv, err := semver.ParseTolerant(value)
	if err != nil {
		return Version{}, &InvalidVersionError{Value: value, Reason: err.Error()}
	}

	v := Version{
		Major: sv.Major,
		Minor: sv.Minor,
		Patch: sv.Patch,
	}
	if len(sv.Pre) > 0 {
		pre := make([]string, 0, len(sv.Pre))
		for _, p := range sv.Pre {
			pre = append(pre, p.String())
		}
		v.Prerelease = strings.Join(pre, ".")
	}
	return v, nil
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s = s + "-" + v.Prerelease
	}
	return s
}

func (v Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

// Channel returns the release channel the version belongs to ("8.0.101" -> "8.0").
func (v Version) Channel() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Channel derives the release channel from a raw version string. The value
// must carry at least major and minor segments.
func Channel(value string) (string, error) {
	if len(strings.Split(strings.TrimSpace(value), ".")) < 2 {
		return "", &InvalidVersionError{Value: value, Reason: "expected at least <major>.<minor>"}
	}
	v, err := Parse(value)
	if err != nil {
		return "", err
	}
	return v.Channel(), nil
}

// UpdateType classifies latest relative to current as major, minor or patch.
// The classification only shapes commit metadata.
func UpdateType(current, latest Version) string {
	switch {
	case latest.Major > current.Major:
		return UpdateTypeMajor
	case latest.Minor > current.Minor:
		return UpdateTypeMinor
	default:
		return UpdateTypePatch
	}
}
