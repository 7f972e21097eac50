package releases

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases/types"
	"github.com/updatebot/update-dotnet-sdk/pkg/sdkversion"
)

// ReleaseNotFoundError is returned when a channel lists no release for the
// requested SDK version. Unrecoverable within a run.
type ReleaseNotFoundError struct {
	Version string
}

func (e *ReleaseNotFoundError) Error() string {
	return fmt.Sprintf("failed to find release for SDK version %s", e.Version)
}

// FindRelease resolves an SDK version to its release record within the
// channel. Feeds carry two shapes for SDK entries: the release's primary sdk
// descriptor, and an optional sdks list of feature-band variants. A single
// primary match wins outright; only when no primary matches is the
// feature-band list scanned, and the matching variant descriptor (not the
// primary) supplies the resulting SDK version.
func FindRelease(channel *types.Channel, sdkVersion string) (*types.ReleaseInfo, error) {
	var release *types.Release
	var sdk *types.Sdk

	primary := primaryMatches(channel, sdkVersion)
	if len(primary) == 1 {
		release = primary[0]
		sdk = &release.Sdk
	} else if len(primary) == 0 {
		release, sdk = featureBandMatch(channel, sdkVersion)
	}

	if release == nil || sdk == nil {
		return nil, &ReleaseNotFoundError{Version: sdkVersion}
	}

	info := &types.ReleaseInfo{
		ReleaseNotes:   release.ReleaseNotes,
		RuntimeVersion: release.RuntimeVersion(),
		SdkVersion:     sdk.Version,
		Security:       release.Security,
	}
	if release.Security {
		info.Cves = cveEntries(release.CveList)
	}
	return info, nil
}

func primaryMatches(channel *types.Channel, version string) []*types.Release {
	var matches []*types.Release
	for i := range channel.Releases {
		if channel.Releases[i].Sdk.Version == version {
			matches = append(matches, &channel.Releases[i])
		}
	}
	return matches
}

func featureBandMatch(channel *types.Channel, version string) (*types.Release, *types.Sdk) {
	for i := range channel.Releases {
		r := &channel.Releases[i]
		for j := range r.Sdks {
			if r.Sdks[j].Version == version {
				return r, &r.Sdks[j]
			}
		}
	}
	return nil, nil
}

// cveEntries normalizes the advisory list of a release. Order is preserved
// and duplicates are kept; ResolveDelta de-duplicates across releases.
func cveEntries(list []types.Cve) []types.Cve {
	if len(list) == 0 {
		return nil
	}
	entries := make([]types.Cve, len(list))
	copy(entries, list)
	return entries
}

// ResolveDelta compares the pinned SDK version against the channel's latest
// SDK and aggregates the security state of every release the update skips
// over. The aggregate is seeded from the latest release alone.
func ResolveDelta(channel *types.Channel, currentSdkVersion string) (*types.UpdateDelta, error) {
	return ResolveDeltaTo(channel, currentSdkVersion, channel.LatestSDK)
}

// ResolveDeltaTo is ResolveDelta against an explicit target SDK version,
// which must be listed in the channel.
func ResolveDeltaTo(channel *types.Channel, currentSdkVersion string, latestSdkVersion string) (*types.UpdateDelta, error) {
	current, err := FindRelease(channel, currentSdkVersion)
	if err != nil {
		return nil, err
	}

	latest, err := FindRelease(channel, latestSdkVersion)
	if err != nil {
		return nil, err
	}

	delta := &types.UpdateDelta{
		Current:  *current,
		Latest:   *latest,
		Security: latest.Security,
		Cves:     cveEntries(latest.Cves),
	}

	if err := aggregateSkippedPatches(channel, delta); err != nil {
		return nil, err
	}

	delta.Cves = dedupeSortCves(delta.Cves)
	return delta, nil
}

// aggregateSkippedPatches folds into the delta the security flag and
// advisories of every runtime patch strictly between current and latest.
// The feed only exposes named SDK versions, so skipped runtime patches are
// recovered by direct lookup on the synthesized runtime version string.
// Patch ordering is only defined for stable patch segments; a pre-release
// suffix on either side skips the scan.
func aggregateSkippedPatches(channel *types.Channel, delta *types.UpdateDelta) error {
	current, err := sdkversion.Parse(delta.Current.RuntimeVersion)
	if err != nil {
		return errors.Wrap(err, "failed to parse current runtime version")
	}
	latest, err := sdkversion.Parse(delta.Latest.RuntimeVersion)
	if err != nil {
		return errors.Wrap(err, "failed to parse latest runtime version")
	}

	if current.IsPrerelease() || latest.IsPrerelease() {
		return nil
	}
	if latest.Patch <= current.Patch+1 {
		return nil
	}

	for p := current.Patch + 1; p < latest.Patch; p++ {
		skipped := findRuntimeRelease(channel, fmt.Sprintf("%d.%d.%d", current.Major, current.Minor, p))
		if skipped == nil {
			continue
		}
		if skipped.Security {
			delta.Security = true
		}
		delta.Cves = append(delta.Cves, cveEntries(skipped.CveList)...)
	}
	return nil
}

func findRuntimeRelease(channel *types.Channel, runtimeVersion string) *types.Release {
	for i := range channel.Releases {
		if channel.Releases[i].RuntimeVersion() == runtimeVersion {
			return &channel.Releases[i]
		}
	}
	return nil
}

// dedupeSortCves de-duplicates advisories by id (first URL wins) and sorts
// the result ascending by id.
func dedupeSortCves(cves []types.Cve) []types.Cve {
	if len(cves) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(cves))
	out := make([]types.Cve, 0, len(cves))
	for _, cve := range cves {
		if _, ok := seen[cve.ID]; ok {
			continue
		}
		seen[cve.ID] = struct{}{}
		out = append(out, cve)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// SyntheticDelta builds a delta for a latest version the channel feed does
// not list (daily-quality builds are published ahead of the feed). The
// synthetic latest carries the current runtime version and release notes,
// and no advisories.
func SyntheticDelta(current types.ReleaseInfo, latestSdkVersion string) *types.UpdateDelta {
	return &types.UpdateDelta{
		Current: current,
		Latest: types.ReleaseInfo{
			ReleaseNotes:   current.ReleaseNotes,
			RuntimeVersion: current.RuntimeVersion,
			SdkVersion:     latestSdkVersion,
		},
	}
}
