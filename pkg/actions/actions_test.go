package actions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunID(t *testing.T) {
	t.Run("uses the workflow run id", func(t *testing.T) {
		t.Setenv("GITHUB_RUN_ID", "8675309000")
		assert.Equal(t, "8675309000", RunID())
	})

	t.Run("generates an id outside of actions", func(t *testing.T) {
		t.Setenv("GITHUB_RUN_ID", "")
		id := RunID()
		assert.Len(t, id, 27)
	})
}

func TestAmbientIdentity(t *testing.T) {
	t.Run("defaults to public github", func(t *testing.T) {
		t.Setenv("GITHUB_REPOSITORY", "")
		t.Setenv("GITHUB_SERVER_URL", "")
		t.Setenv("GITHUB_API_URL", "")

		assert.Equal(t, "", Repository())
		assert.Equal(t, "https://github.com", ServerURL())
		assert.Equal(t, "https://api.github.com", APIURL())
	})

	t.Run("reads the runner environment", func(t *testing.T) {
		t.Setenv("GITHUB_REPOSITORY", "owner/repo")
		t.Setenv("GITHUB_SERVER_URL", "https://ghe.example.com/")
		t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")

		assert.Equal(t, "owner/repo", Repository())
		assert.Equal(t, "https://ghe.example.com", ServerURL())
		assert.Equal(t, "https://ghe.example.com/api/v3", APIURL())
	})
}

func TestSetOutput(t *testing.T) {
	t.Run("appends to the output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output")
		t.Setenv("GITHUB_OUTPUT", path)

		require.NoError(t, SetOutput("branch-name", "update-dotnet-sdk-8.0.204"))
		require.NoError(t, SetOutput("sdk-updated", "true"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "branch-name=update-dotnet-sdk-8.0.204\nsdk-updated=true\n", string(data))
	})

	t.Run("wraps multiline values in a heredoc", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output")
		t.Setenv("GITHUB_OUTPUT", path)

		require.NoError(t, SetOutput("summary", "line one\nline two"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "summary<<ghadelimiter_"))
		assert.Equal(t, "line one", lines[1])
		assert.Equal(t, "line two", lines[2])
		assert.Equal(t, strings.TrimPrefix(lines[0], "summary<<"), lines[3])
	})

	t.Run("no-op without the output file", func(t *testing.T) {
		t.Setenv("GITHUB_OUTPUT", "")
		require.NoError(t, SetOutput("branch-name", "update-dotnet-sdk-8.0.204"))
	})
}

func TestAppendStepSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary")
	t.Setenv("GITHUB_STEP_SUMMARY", path)

	require.NoError(t, AppendStepSummary("## .NET SDK updated"))
	require.NoError(t, AppendStepSummary("8.0.101 to 8.0.204\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## .NET SDK updated\n8.0.101 to 8.0.204\n", string(data))
}
