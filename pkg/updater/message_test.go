package updater

import (
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/updatebot/update-dotnet-sdk/pkg/config"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases/types"
	"github.com/updatebot/update-dotnet-sdk/pkg/sdkversion"
)

func TestBranchName(t *testing.T) {
	assert.Equal(t, "update-dotnet-sdk-8.0.204", BranchName("8.0.204"))
	assert.Equal(t, "update-dotnet-sdk-9.0.100-preview.1.24101.2", BranchName("9.0.100-PREVIEW.1.24101.2"))
}

func TestCommitMessage(t *testing.T) {
	t.Run("patch update", func(t *testing.T) {
		message, err := CommitMessage("8.0", "8.0.101", "8.0.204")
		require.NoError(t, err)

		assert.Equal(t, `Update .NET SDK

Update .NET SDK to version 8.0.204 for the 8.0 channel.

---
updated-dependencies:
- dependency-name: Microsoft.NET.Sdk
  dependency-type: direct:production
  update-type: version-update:semver-patch
...`, message)
	})

	t.Run("minor update", func(t *testing.T) {
		message, err := CommitMessage("8.0", "8.0.100", "8.1.100")
		require.NoError(t, err)
		assert.Contains(t, message, "update-type: version-update:semver-minor")
	})

	t.Run("major update", func(t *testing.T) {
		message, err := CommitMessage("9.0", "8.0.100", "9.0.100")
		require.NoError(t, err)
		assert.Contains(t, message, "update-type: version-update:semver-major")
	})

	t.Run("trailer is machine parseable", func(t *testing.T) {
		message, err := CommitMessage("8.0", "8.0.101", "8.0.204")
		require.NoError(t, err)

		trailer := regexp.MustCompile(`(?s)---\nupdated-dependencies:\n- dependency-name: Microsoft\.NET\.Sdk\n  dependency-type: direct:production\n  update-type: version-update:semver-(major|minor|patch)\n\.\.\.$`)
		assert.Regexp(t, trailer, message)
	})

	t.Run("invalid version", func(t *testing.T) {
		_, err := CommitMessage("8.0", "not-a-version", "8.0.204")
		require.Error(t, err)

		var invalid *sdkversion.InvalidVersionError
		assert.True(t, errors.As(err, &invalid))
	})
}

func TestPullRequestBody(t *testing.T) {
	t.Run("runtime change with advisories and footer", func(t *testing.T) {
		delta := &types.UpdateDelta{
			Current: types.ReleaseInfo{
				ReleaseNotes:   "https://github.com/dotnet/core/blob/main/release-notes/8.0/8.0.1/8.0.1.md",
				RuntimeVersion: "8.0.1",
				SdkVersion:     "8.0.101",
			},
			Latest: types.ReleaseInfo{
				ReleaseNotes:   "https://github.com/dotnet/core/blob/main/release-notes/8.0/8.0.4/8.0.4.md",
				RuntimeVersion: "8.0.4",
				SdkVersion:     "8.0.204",
				Security:       true,
			},
			Security: true,
			Cves: []types.Cve{
				{ID: "CVE-2024-21386", URL: "https://www.cve.org/CVERecord?id=CVE-2024-21386"},
				{ID: "CVE-2024-21409", URL: "https://www.cve.org/CVERecord?id=CVE-2024-21409"},
			},
		}
		cfg := &config.UpdaterConfig{
			Repository: "owner/repo",
			ServerURL:  "https://github.com",
			RunID:      "8675309000",
		}

		body := PullRequestBody(delta, cfg)

		assert.Equal(t, "Updates the .NET SDK from `8.0.101` to `8.0.204`.\n"+
			"\n"+
			"This update also includes the .NET runtime `8.0.4` (previously `8.0.1`).\n"+
			"\n"+
			"Release notes:\n"+
			"- [.NET 8.0.1](https://github.com/dotnet/core/blob/main/release-notes/8.0/8.0.1/8.0.1.md)\n"+
			"- [.NET 8.0.4](https://github.com/dotnet/core/blob/main/release-notes/8.0/8.0.4/8.0.4.md)\n"+
			"\n"+
			"This update includes fixes for the following security advisories:\n"+
			"- [CVE-2024-21386](https://www.cve.org/CVERecord?id=CVE-2024-21386)\n"+
			"- [CVE-2024-21409](https://www.cve.org/CVERecord?id=CVE-2024-21409)\n"+
			"\n"+
			"This pull request was generated by a [workflow run](https://github.com/owner/repo/actions/runs/8675309000).\n", body)
	})

	t.Run("sdk only update", func(t *testing.T) {
		delta := &types.UpdateDelta{
			Current: types.ReleaseInfo{RuntimeVersion: "8.0.3", SdkVersion: "8.0.203"},
			Latest:  types.ReleaseInfo{RuntimeVersion: "8.0.3", SdkVersion: "8.0.204"},
		}

		body := PullRequestBody(delta, &config.UpdaterConfig{})

		assert.Equal(t, "Updates the .NET SDK from `8.0.203` to `8.0.204`.\n", body)
	})

	t.Run("advisory without a url", func(t *testing.T) {
		delta := &types.UpdateDelta{
			Current:  types.ReleaseInfo{RuntimeVersion: "8.0.3", SdkVersion: "8.0.203"},
			Latest:   types.ReleaseInfo{RuntimeVersion: "8.0.3", SdkVersion: "8.0.204"},
			Security: true,
			Cves:     []types.Cve{{ID: "CVE-2024-21409"}},
		}

		body := PullRequestBody(delta, &config.UpdaterConfig{})

		assert.Contains(t, body, "\n- CVE-2024-21409\n")
	})
}

func TestStepSummary(t *testing.T) {
	delta := &types.UpdateDelta{
		Current: types.ReleaseInfo{SdkVersion: "8.0.101"},
		Latest:  types.ReleaseInfo{SdkVersion: "8.0.204"},
	}

	t.Run("up to date", func(t *testing.T) {
		summary := StepSummary(delta, &Result{SDKVersion: "8.0.101"})
		assert.Contains(t, summary, "## .NET SDK Update")
		assert.Contains(t, summary, "up to date (version `8.0.101`)")
	})

	t.Run("branch already exists", func(t *testing.T) {
		summary := StepSummary(delta, &Result{BranchName: "update-dotnet-sdk-8.0.204", SDKVersion: "8.0.204"})
		assert.Contains(t, summary, "Branch `update-dotnet-sdk-8.0.204` already exists")
	})

	t.Run("update applied", func(t *testing.T) {
		summary := StepSummary(delta, &Result{
			UpdateApplied:  true,
			BranchName:     "update-dotnet-sdk-8.0.204",
			SDKVersion:     "8.0.204",
			Security:       true,
			PullRequestURL: "https://github.com/owner/repo/pull/42",
		})
		assert.Contains(t, summary, "Updated the .NET SDK from `8.0.101` to `8.0.204`.")
		assert.Contains(t, summary, "security fixes")
		assert.Contains(t, summary, "https://github.com/owner/repo/pull/42")
	})
}
