package git

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/updatebot/update-dotnet-sdk/pkg/logger"
)

// CommandError is a git invocation that failed, either by exit status or by
// writing to stderr on a call that does not tolerate it. Args are the
// display form with credentials redacted.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s failed (exit %d): %s", strings.Join(e.Args, " "), e.ExitCode, strings.TrimSpace(e.Stderr))
}

// runFunc executes one git invocation and reports captured output and the
// exit code. A non-nil error means the process could not run at all.
type runFunc func(ctx context.Context, dir string, args ...string) (stdout string, stderr string, exitCode int, err error)

// CLI drives the git command line in a single working directory. Output is
// always captured, never streamed. Most calls fail on any stderr output even
// with a zero exit status; the few that tolerate chatter say so.
type CLI struct {
	workDir string
	gitPath string
	run     runFunc
}

// Option configures a CLI.
type Option func(*CLI)

// WithGitPath overrides the git executable path.
func WithGitPath(path string) Option {
	return func(c *CLI) {
		c.gitPath = path
	}
}

func New(workDir string, opts ...Option) *CLI {
	c := &CLI{
		workDir: workDir,
		gitPath: "git",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.run == nil {
		c.run = c.execRun
	}
	return c
}

type call struct {
	args           []string
	display        []string
	tolerateStderr bool
}

func (c *CLI) git(ctx context.Context, cl call) (string, error) {
	display := cl.display
	if display == nil {
		display = cl.args
	}
	logger.Debugf("running git %s", strings.Join(display, " "))

	stdout, stderr, exitCode, err := c.run(ctx, c.workDir, cl.args...)
	if err != nil {
		return "", errors.Wrapf(err, "failed to run git %s", strings.Join(display, " "))
	}
	if exitCode != 0 {
		return "", &CommandError{Args: display, ExitCode: exitCode, Stderr: stderr}
	}
	if !cl.tolerateStderr && strings.TrimSpace(stderr) != "" {
		return "", &CommandError{Args: display, ExitCode: 0, Stderr: stderr}
	}
	return stdout, nil
}

func (c *CLI) execRun(ctx context.Context, dir string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, c.gitPath, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
		}
		return "", "", -1, err
	}
	return stdout.String(), stderr.String(), 0, nil
}

// CurrentBranch returns the checked-out branch name.
func (c *CLI) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.git(ctx, call{args: []string{"rev-parse", "--abbrev-ref", "HEAD"}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ConfigureUser sets the commit identity for the working directory.
func (c *CLI) ConfigureUser(ctx context.Context, name string, email string) error {
	if _, err := c.git(ctx, call{args: []string{"config", "user.name", name}}); err != nil {
		return err
	}
	if _, err := c.git(ctx, call{args: []string{"config", "user.email", email}}); err != nil {
		return err
	}
	return nil
}

// SetRemoteURL points a remote at a URL. The URL may embed credentials;
// errors and logs carry a redacted form.
func (c *CLI) SetRemoteURL(ctx context.Context, remote string, rawURL string) error {
	_, err := c.git(ctx, call{
		args:    []string{"remote", "set-url", remote, rawURL},
		display: []string{"remote", "set-url", remote, redactURL(rawURL)},
	})
	return err
}

// Fetch updates remote-tracking refs. Progress chatter on stderr is
// tolerated; callers treat a failure as non-fatal.
func (c *CLI) Fetch(ctx context.Context, remote string) error {
	_, err := c.git(ctx, call{
		args:           []string{"fetch", remote},
		tolerateStderr: true,
	})
	return err
}

// RemoteBranchExists probes the remote-tracking ref for a branch. A missing
// ref exits non-zero; that is a negative answer, not a failure.
func (c *CLI) RemoteBranchExists(ctx context.Context, branch string) (bool, error) {
	args := []string{"rev-parse", "--verify", "--quiet", fmt.Sprintf("remotes/origin/%s", branch)}
	logger.Debugf("running git %s", strings.Join(args, " "))

	stdout, _, exitCode, err := c.run(ctx, c.workDir, args...)
	if err != nil {
		return false, errors.Wrapf(err, "failed to run git %s", strings.Join(args, " "))
	}
	return exitCode == 0 && strings.TrimSpace(stdout) != "", nil
}

// CreateBranch creates and checks out a branch.
func (c *CLI) CreateBranch(ctx context.Context, branch string) error {
	_, err := c.git(ctx, call{args: []string{"checkout", "--quiet", "-b", branch}})
	return err
}

// Add stages the given paths.
func (c *CLI) Add(ctx context.Context, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := c.git(ctx, call{args: args})
	return err
}

// Commit records the staged changes with a sign-off trailer.
func (c *CLI) Commit(ctx context.Context, message string) error {
	_, err := c.git(ctx, call{args: []string{"commit", "--signoff", "-m", message}})
	return err
}

// HeadSHA returns the commit id of HEAD.
func (c *CLI) HeadSHA(ctx context.Context) (string, error) {
	out, err := c.git(ctx, call{args: []string{"rev-parse", "HEAD"}})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Push publishes a branch and sets its upstream. Remotes send hook banners
// over the sideband on new-branch pushes, so stderr chatter is tolerated.
func (c *CLI) Push(ctx context.Context, remote string, branch string) error {
	_, err := c.git(ctx, call{
		args:           []string{"push", "--quiet", "-u", remote, branch},
		tolerateStderr: true,
	})
	return err
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.User("***")
	return u.String()
}
