// Package actions integrates with the GitHub Actions runner environment:
// ambient identity from GITHUB_* variables and the file commands used to
// report workflow outputs and step summaries.
package actions

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

// RunID returns the workflow run id, or a generated id outside of Actions.
func RunID() string {
	if id := os.Getenv("GITHUB_RUN_ID"); id != "" {
		return id
	}
	return ksuid.New().String()
}

// Repository returns the "owner/name" the workflow runs in.
func Repository() string {
	return os.Getenv("GITHUB_REPOSITORY")
}

// ServerURL returns the GitHub server url, defaulting to public GitHub.
func ServerURL() string {
	if u := os.Getenv("GITHUB_SERVER_URL"); u != "" {
		return strings.TrimRight(u, "/")
	}
	return "https://github.com"
}

// APIURL returns the GitHub API url, defaulting to public GitHub.
func APIURL() string {
	if u := os.Getenv("GITHUB_API_URL"); u != "" {
		return strings.TrimRight(u, "/")
	}
	return "https://api.github.com"
}

// SetOutput reports a workflow output through the GITHUB_OUTPUT file
// command. Outside of Actions this is a no-op.
func SetOutput(name string, value string) error {
	return appendFileCommand("GITHUB_OUTPUT", formatOutput(name, value))
}

// Multiline values use the runner's heredoc form with a random delimiter.
func formatOutput(name string, value string) string {
	if strings.Contains(value, "\n") {
		delimiter := fmt.Sprintf("ghadelimiter_%s", ksuid.New().String())
		return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	}
	return fmt.Sprintf("%s=%s\n", name, value)
}

// AppendStepSummary appends markdown to the workflow step summary. Outside
// of Actions this is a no-op.
func AppendStepSummary(markdown string) error {
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	return appendFileCommand("GITHUB_STEP_SUMMARY", markdown)
}

func appendFileCommand(envVar string, contents string) error {
	path := os.Getenv(envVar)
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s file", envVar)
	}
	defer f.Close()

	if _, err := f.WriteString(contents); err != nil {
		return errors.Wrapf(err, "failed to write %s file", envVar)
	}
	return nil
}
