package types

// Channel is one release channel document ("8.0") from the release-metadata
// feed. Fetched fresh per run and never mutated.
type Channel struct {
	ChannelVersion string    `json:"channel-version"`
	LatestRelease  string    `json:"latest-release"`
	LatestRuntime  string    `json:"latest-runtime"`
	LatestSDK      string    `json:"latest-sdk"`
	ReleaseType    string    `json:"release-type"`
	SupportPhase   string    `json:"support-phase"`
	Releases       []Release `json:"releases"`
}

// Release is a single published release point pairing a runtime version with
// one or more SDK variants. Some releases bundle additional SDK feature bands
// under Sdks next to the primary Sdk descriptor.
type Release struct {
	ReleaseDate    string   `json:"release-date"`
	ReleaseVersion string   `json:"release-version"`
	Security       bool     `json:"security"`
	CveList        []Cve    `json:"cve-list"`
	ReleaseNotes   string   `json:"release-notes"`
	Runtime        *Runtime `json:"runtime"`
	Sdk            Sdk      `json:"sdk"`
	Sdks           []Sdk    `json:"sdks"`
}

// RuntimeVersion returns the runtime version of the release, falling back to
// the release version for documents that omit the runtime block.
func (r Release) RuntimeVersion() string {
	if r.Runtime != nil && r.Runtime.Version != "" {
		return r.Runtime.Version
	}
	return r.ReleaseVersion
}

type Sdk struct {
	Version        string `json:"version"`
	VersionDisplay string `json:"version-display,omitempty"`
	RuntimeVersion string `json:"runtime-version"`
}

type Runtime struct {
	Version        string `json:"version"`
	VersionDisplay string `json:"version-display,omitempty"`
}

// Cve is a security advisory attached to a release.
type Cve struct {
	ID  string `json:"cve-id"`
	URL string `json:"cve-url"`
}

func (c Cve) Equal(other Cve) bool {
	return c.ID == other.ID
}

// ReleaseInfo is the resolved view of a single SDK version within a channel.
// Cves carries only the advisories of that exact release point, and only when
// the release is security-flagged.
type ReleaseInfo struct {
	ReleaseNotes   string
	RuntimeVersion string
	SdkVersion     string
	Security       bool
	Cves           []Cve
}

// UpdateDelta compares the currently pinned release with the channel's
// latest. Security and Cves aggregate the latest release and every skipped
// intermediate runtime patch between the two.
type UpdateDelta struct {
	Current  ReleaseInfo
	Latest   ReleaseInfo
	Security bool
	Cves     []Cve
}

// RuntimeChanged reports whether the update moves the runtime version too.
func (d UpdateDelta) RuntimeChanged() bool {
	return d.Current.RuntimeVersion != d.Latest.RuntimeVersion
}

// IsUpdate reports whether latest differs from current at all.
func (d UpdateDelta) IsUpdate() bool {
	return d.Current.SdkVersion != d.Latest.SdkVersion
}
