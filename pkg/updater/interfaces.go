package updater

import (
	"context"

	"github.com/updatebot/update-dotnet-sdk/pkg/git"
	"github.com/updatebot/update-dotnet-sdk/pkg/github"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases/types"
)

//go:generate mockgen -source=interfaces.go -destination=mock/mock.go -package=mock

var (
	_ ReleasesClient = (*releases.Client)(nil)
	_ GitClient      = (*git.CLI)(nil)
	_ PullRequester  = (*github.Client)(nil)
)

// ReleasesClient fetches release metadata for a channel.
type ReleasesClient interface {
	GetChannel(ctx context.Context, channel string) (*types.Channel, error)
	GetQualityVersion(ctx context.Context, channel string, quality string) (string, error)
}

// GitClient drives the local working tree and its remote.
type GitClient interface {
	CurrentBranch(ctx context.Context) (string, error)
	ConfigureUser(ctx context.Context, name string, email string) error
	SetRemoteURL(ctx context.Context, remote string, url string) error
	Fetch(ctx context.Context, remote string) error
	RemoteBranchExists(ctx context.Context, branch string) (bool, error)
	CreateBranch(ctx context.Context, branch string) error
	Add(ctx context.Context, paths ...string) error
	Commit(ctx context.Context, message string) error
	HeadSHA(ctx context.Context) (string, error)
	Push(ctx context.Context, remote string, branch string) error
}

// PullRequester opens and labels pull requests.
type PullRequester interface {
	CreatePullRequest(ctx context.Context, repo string, pr github.NewPullRequest) (*github.PullRequest, error)
	AddLabels(ctx context.Context, repo string, number int, labels []string) error
}
