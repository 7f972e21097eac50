package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/updatebot/update-dotnet-sdk/pkg/actions"
	"github.com/updatebot/update-dotnet-sdk/pkg/config"
	"github.com/updatebot/update-dotnet-sdk/pkg/git"
	"github.com/updatebot/update-dotnet-sdk/pkg/github"
	"github.com/updatebot/update-dotnet-sdk/pkg/logger"
	"github.com/updatebot/update-dotnet-sdk/pkg/releases"
	"github.com/updatebot/update-dotnet-sdk/pkg/updater"
)

func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "update",
		Short:        "Update the .NET SDK pinned in global.json and open a pull request",
		Long:         ``,
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()

			if v.GetString("log-level") == "debug" {
				logger.SetDebug()
			}

			cfg, err := config.ConfigFromViper(v)
			if err != nil {
				return err
			}

			cfg.Repository = actions.Repository()
			cfg.ServerURL = actions.ServerURL()
			cfg.APIURL = actions.APIURL()
			cfg.RunID = actions.RunID()

			if err := cfg.Validate(); err != nil {
				return err
			}

			releasesClient := releases.NewClient()
			gitClient := git.New(".")
			githubClient := github.NewClient(cfg.GitHubToken, github.WithAPIEndpoint(cfg.APIURL))

			result, err := updater.New(cfg, releasesClient, gitClient, githubClient).Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := writeOutputs(result); err != nil {
				return errors.Wrap(err, "failed to write step outputs")
			}

			if cfg.GenerateStepSummary {
				if err := actions.AppendStepSummary(result.Summary); err != nil {
					logger.Error(errors.Wrap(err, "failed to write step summary"))
				}
			}

			return nil
		},
	}

	cmd.Flags().String("config-file", "", "path to the updater config file")
	cmd.Flags().String("github-token", "", "token used to push the update branch and open the pull request")
	cmd.Flags().String("global-json-file", "", "path to the global.json file to update")
	cmd.Flags().String("branch-name", "", "name of the branch to create for the update")
	cmd.Flags().String("channel", "", "release channel to update within (defaults to the channel of the pinned version)")
	cmd.Flags().String("commit-message", "", "commit message for the update")
	cmd.Flags().String("labels", "", "comma-separated labels to add to the pull request")
	cmd.Flags().String("quality", "", "build quality to update to (daily, signed, validated, preview, ga)")
	cmd.Flags().String("user-name", "", "git user name for the update commit")
	cmd.Flags().String("user-email", "", "git user email for the update commit")
	cmd.Flags().String("repo", "", "target repository in owner/name form (defaults to GITHUB_REPOSITORY)")
	cmd.Flags().Bool("dry-run", false, "apply and commit the update locally without pushing or opening a pull request")
	cmd.Flags().Bool("generate-step-summary", false, "append a run summary to the GitHub Actions step summary")

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return cmd
}

// writeOutputs publishes the run outcome as step outputs. All keys are
// written on every outcome; the pull request keys are empty when no pull
// request was created.
func writeOutputs(result *updater.Result) error {
	prNumber := ""
	if result.PullRequestNumber != 0 {
		prNumber = strconv.Itoa(result.PullRequestNumber)
	}

	outputs := []struct {
		name  string
		value string
	}{
		{"sdk-updated", strconv.FormatBool(result.UpdateApplied)},
		{"sdk-version", result.SDKVersion},
		{"branch-name", result.BranchName},
		{"security", strconv.FormatBool(result.Security)},
		{"pull-request-number", prNumber},
		{"pull-request-html-url", result.PullRequestURL},
	}
	for _, output := range outputs {
		if err := actions.SetOutput(output.name, output.value); err != nil {
			return err
		}
	}
	return nil
}
