package updater

import (
	"fmt"
	"strings"

	"github.com/updatebot/update-dotnet-sdk/pkg/config"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases/types"
	"github.com/updatebot/update-dotnet-sdk/pkg/sdkversion"
)

// BranchName derives the update branch for a target SDK version.
func BranchName(version string) string {
	return strings.ToLower("update-dotnet-sdk-" + version)
}

// PullRequestTitle names the proposed change.
func PullRequestTitle(version string) string {
	return fmt.Sprintf("Update .NET SDK to %s", version)
}

// CommitMessage renders the dependency-update commit message: a fixed
// subject, a sentence naming the new version, and the machine-readable
// trailer understood by dependency dashboards.
func CommitMessage(channel string, currentVersion string, latestVersion string) (string, error) {
	current, err := sdkversion.Parse(currentVersion)
	if err != nil {
		return "", err
	}
	latest, err := sdkversion.Parse(latestVersion)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Update .NET SDK\n")
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Update .NET SDK to version %s for the %s channel.\n", latestVersion, channel)
	sb.WriteString("\n")
	sb.WriteString("---\n")
	sb.WriteString("updated-dependencies:\n")
	sb.WriteString("- dependency-name: Microsoft.NET.Sdk\n")
	sb.WriteString("  dependency-type: direct:production\n")
	fmt.Fprintf(&sb, "  update-type: version-update:semver-%s\n", sdkversion.UpdateType(current, latest))
	sb.WriteString("...")
	return sb.String(), nil
}

// PullRequestBody renders the narrative body of the proposed change.
func PullRequestBody(delta *types.UpdateDelta, cfg *config.UpdaterConfig) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Updates the .NET SDK from `%s` to `%s`.\n", delta.Current.SdkVersion, delta.Latest.SdkVersion)

	if delta.RuntimeChanged() {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "This update also includes the .NET runtime `%s` (previously `%s`).\n", delta.Latest.RuntimeVersion, delta.Current.RuntimeVersion)

		if delta.Current.ReleaseNotes != "" || delta.Latest.ReleaseNotes != "" {
			sb.WriteString("\n")
			sb.WriteString("Release notes:\n")
			if delta.Current.ReleaseNotes != "" {
				fmt.Fprintf(&sb, "- [.NET %s](%s)\n", delta.Current.RuntimeVersion, delta.Current.ReleaseNotes)
			}
			if delta.Latest.ReleaseNotes != "" {
				fmt.Fprintf(&sb, "- [.NET %s](%s)\n", delta.Latest.RuntimeVersion, delta.Latest.ReleaseNotes)
			}
		}
	}

	if delta.Security && len(delta.Cves) > 0 {
		sb.WriteString("\n")
		sb.WriteString("This update includes fixes for the following security advisories:\n")
		for _, cve := range delta.Cves {
			if cve.URL != "" {
				fmt.Fprintf(&sb, "- [%s](%s)\n", cve.ID, cve.URL)
			} else {
				fmt.Fprintf(&sb, "- %s\n", cve.ID)
			}
		}
	}

	if cfg.Repository != "" && cfg.ServerURL != "" && cfg.RunID != "" {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "This pull request was generated by a [workflow run](%s/%s/actions/runs/%s).\n",
			strings.TrimRight(cfg.ServerURL, "/"), cfg.Repository, cfg.RunID)
	}

	return sb.String()
}

// StepSummary renders the workflow step summary for a terminal outcome.
func StepSummary(delta *types.UpdateDelta, result *Result) string {
	var sb strings.Builder
	sb.WriteString("## .NET SDK Update\n")
	sb.WriteString("\n")

	switch {
	case !result.UpdateApplied && result.BranchName != "":
		fmt.Fprintf(&sb, "Branch `%s` already exists; no new update was created for .NET SDK `%s`.\n", result.BranchName, result.SDKVersion)
	case !result.UpdateApplied:
		fmt.Fprintf(&sb, "The .NET SDK is up to date (version `%s`).\n", result.SDKVersion)
	default:
		fmt.Fprintf(&sb, "Updated the .NET SDK from `%s` to `%s`.\n", delta.Current.SdkVersion, delta.Latest.SdkVersion)
		if result.Security {
			sb.WriteString("\n")
			sb.WriteString("This update includes security fixes.\n")
		}
		if result.PullRequestURL != "" {
			sb.WriteString("\n")
			fmt.Fprintf(&sb, "Pull request: %s\n", result.PullRequestURL)
		}
	}
	return sb.String()
}
