package updater

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/updatebot/update-dotnet-sdk/pkg/config"
	"github.com/updatebot/update-dotnet-sdk/pkg/github"
	"github.com/updatebot/update-dotnet-sdk/pkg/logger"
	"github.com/updatebot/update-dotnet-sdk/pkg/manifest"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases/types"
	"github.com/updatebot/update-dotnet-sdk/pkg/sdkversion"
)

// Updater executes one update run over a checked-out repository: load the
// manifest, resolve the channel delta, rewrite the manifest, and raise a
// pull request for the change.
type Updater struct {
	cfg      *config.UpdaterConfig
	releases ReleasesClient
	git      GitClient
	github   PullRequester
}

// Result is the terminal outcome of a run. The two non-update outcomes
// (already up to date, update branch already pushed) leave UpdateApplied
// false; a dry run leaves the pull request fields zero.
type Result struct {
	UpdateApplied     bool
	BranchName        string
	SDKVersion        string
	Security          bool
	PullRequestNumber int
	PullRequestURL    string
	Summary           string
}

func New(cfg *config.UpdaterConfig, releasesClient ReleasesClient, gitClient GitClient, pullRequester PullRequester) *Updater {
	return &Updater{
		cfg:      cfg,
		releases: releasesClient,
		git:      gitClient,
		github:   pullRequester,
	}
}

// Run performs one update run. Steps are strictly sequential; nothing is
// branched, committed, or pushed once a step fails.
func (u *Updater) Run(ctx context.Context) (*Result, error) {
	targetRepo := u.cfg.Repo
	if targetRepo == "" {
		targetRepo = u.cfg.Repository
	}
	if targetRepo == "" && !u.cfg.DryRun {
		return nil, errors.New("target repository must be specified when not running in GitHub Actions")
	}

	m, err := manifest.Load(u.cfg.GlobalJSONFile)
	if err != nil {
		return nil, err
	}
	currentVersion := m.SDKVersion()

	channel := u.cfg.Channel
	if channel == "" {
		if channel, err = sdkversion.Channel(currentVersion); err != nil {
			return nil, err
		}
	}
	logger.Infof("Current .NET SDK version is %s (channel %s)", currentVersion, channel)

	ch, err := u.releases.GetChannel(ctx, channel)
	if err != nil {
		return nil, err
	}

	delta, err := u.computeDelta(ctx, ch, channel, currentVersion)
	if err != nil {
		return nil, err
	}

	if !delta.IsUpdate() {
		logger.Infof("The .NET SDK is up to date (%s)", currentVersion)
		result := &Result{SDKVersion: currentVersion}
		result.Summary = StepSummary(delta, result)
		return result, nil
	}

	latestVersion := delta.Latest.SdkVersion
	if delta.Security {
		logger.Infof("Updating the .NET SDK from %s to %s (security update)", currentVersion, latestVersion)
	} else {
		logger.Infof("Updating the .NET SDK from %s to %s", currentVersion, latestVersion)
	}

	m.SetSDKVersion(latestVersion)
	if err := m.Save(); err != nil {
		return nil, err
	}

	branchName := u.cfg.BranchName
	if branchName == "" {
		branchName = BranchName(latestVersion)
	}

	commitMessage := u.cfg.CommitMessage
	if commitMessage == "" {
		if commitMessage, err = CommitMessage(channel, currentVersion, latestVersion); err != nil {
			return nil, err
		}
	}

	baseBranch, err := u.git.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.git.ConfigureUser(ctx, u.cfg.UserName, u.cfg.UserEmail); err != nil {
		return nil, err
	}

	if u.cfg.GitHubToken != "" && targetRepo != "" {
		if err := u.git.SetRemoteURL(ctx, "origin", remoteURL(u.serverURL(), targetRepo, u.cfg.GitHubToken)); err != nil {
			return nil, err
		}
	}

	if err := u.git.Fetch(ctx, "origin"); err != nil {
		logger.Infof("Could not fetch origin, proceeding with local refs: %v", err)
	}

	exists, err := u.git.RemoteBranchExists(ctx, branchName)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Infof("Branch %s already exists on origin, skipping update", branchName)
		result := &Result{
			BranchName: branchName,
			SDKVersion: latestVersion,
			Security:   delta.Security,
		}
		result.Summary = StepSummary(delta, result)
		return result, nil
	}

	if err := u.git.CreateBranch(ctx, branchName); err != nil {
		return nil, err
	}
	if err := u.git.Add(ctx, u.cfg.GlobalJSONFile); err != nil {
		return nil, err
	}
	if err := u.git.Commit(ctx, commitMessage); err != nil {
		return nil, err
	}

	sha, err := u.git.HeadSHA(ctx)
	if err != nil {
		return nil, err
	}
	logger.Infof("Committed %s to branch %s", sha, branchName)

	result := &Result{
		UpdateApplied: true,
		BranchName:    branchName,
		SDKVersion:    latestVersion,
		Security:      delta.Security,
	}

	if u.cfg.DryRun {
		logger.Infof("Dry run: not pushing branch %s or creating a pull request", branchName)
		result.Summary = StepSummary(delta, result)
		return result, nil
	}

	if err := u.git.Push(ctx, "origin", branchName); err != nil {
		return nil, err
	}

	pr, err := u.github.CreatePullRequest(ctx, targetRepo, github.NewPullRequest{
		Title: PullRequestTitle(latestVersion),
		Head:  branchName,
		Base:  baseBranch,
		Body:  PullRequestBody(delta, u.cfg),
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("Created pull request %s", pr.HTMLURL)

	result.PullRequestNumber = pr.Number
	result.PullRequestURL = pr.HTMLURL

	if labels := u.cfg.LabelList(); len(labels) > 0 {
		if err := u.github.AddLabels(ctx, targetRepo, pr.Number, labels); err != nil {
			logger.Error(errors.Wrapf(err, "failed to add labels to pull request %d", pr.Number))
		}
	}

	result.Summary = StepSummary(delta, result)
	return result, nil
}

// computeDelta resolves what the run would update to. Without a quality
// input the channel's latest-sdk is the target; with one, the version
// published at that build quality is.
func (u *Updater) computeDelta(ctx context.Context, ch *types.Channel, channel string, currentVersion string) (*types.UpdateDelta, error) {
	if u.cfg.Quality == "" {
		return releases.ResolveDelta(ch, currentVersion)
	}
	return u.qualityDelta(ctx, ch, channel, currentVersion)
}

// qualityDelta targets the version published at the configured build
// quality. Quality builds, dailies especially, are often ahead of the
// release feed, so both sides of the delta resolve best-effort: a version
// the feed does not list is carried as a bare version string.
func (u *Updater) qualityDelta(ctx context.Context, ch *types.Channel, channel string, currentVersion string) (*types.UpdateDelta, error) {
	qualityVersion, err := u.releases.GetQualityVersion(ctx, channel, u.cfg.Quality)
	if err != nil {
		return nil, err
	}
	logger.Infof("Latest %s quality SDK version for channel %s is %s", u.cfg.Quality, channel, qualityVersion)

	current, currentErr := releases.FindRelease(ch, currentVersion)
	if currentErr != nil {
		logger.Debugf("current SDK version %s is not listed in the %s feed", currentVersion, channel)
		current = &types.ReleaseInfo{SdkVersion: currentVersion}
	}

	latest, latestErr := releases.FindRelease(ch, qualityVersion)
	if latestErr == nil {
		if currentErr == nil {
			return releases.ResolveDeltaTo(ch, currentVersion, qualityVersion)
		}
		return &types.UpdateDelta{
			Current:  *current,
			Latest:   *latest,
			Security: latest.Security,
			Cves:     latest.Cves,
		}, nil
	}

	return releases.SyntheticDelta(*current, qualityVersion), nil
}

func (u *Updater) serverURL() string {
	if u.cfg.ServerURL != "" {
		return strings.TrimRight(u.cfg.ServerURL, "/")
	}
	return "https://github.com"
}

// remoteURL builds the push URL for a repository, embedding the token as
// userinfo the way actions/checkout configures its credential.
func remoteURL(serverURL string, repo string, token string) string {
	u, err := url.Parse(serverURL)
	if err != nil || u.Host == "" {
		return fmt.Sprintf("%s/%s.git", serverURL, repo)
	}
	u.User = url.UserPassword("x-access-token", token)
	return fmt.Sprintf("%s/%s.git", strings.TrimRight(u.String(), "/"), repo)
}
