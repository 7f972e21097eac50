package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultUserName and DefaultUserEmail are the github-actions bot
	// identity used for commits when no committer is configured.
	DefaultUserName  = "github-actions[bot]"
	DefaultUserEmail = "41898282+github-actions[bot]@users.noreply.github.com"
)

// UpdaterConfig is the full configuration of one update run. A YAML config
// file can seed any input field; flag and environment values win over it.
type UpdaterConfig struct {
	GitHubToken         string `yaml:"githubToken"`
	GlobalJSONFile      string `yaml:"globalJsonFile"`
	BranchName          string `yaml:"branchName"`
	Channel             string `yaml:"channel"`
	CommitMessage       string `yaml:"commitMessage"`
	Labels              string `yaml:"labels"`
	Quality             string `yaml:"quality"`
	DryRun              bool   `yaml:"dryRun"`
	GenerateStepSummary bool   `yaml:"generateStepSummary"`
	UserName            string `yaml:"userName"`
	UserEmail           string `yaml:"userEmail"`
	Repo                string `yaml:"repo"`

	// Ambient runner identity, resolved by the command layer.
	Repository string `yaml:"-"`
	ServerURL  string `yaml:"-"`
	APIURL     string `yaml:"-"`
	RunID      string `yaml:"-"`
}

func ParseUpdaterConfig(config []byte) (*UpdaterConfig, error) {
	var uc UpdaterConfig
	err := yaml.Unmarshal(config, &uc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config file")
	}
	return &uc, nil
}

// ConfigFromViper assembles the run configuration. An optional config file
// named by the config-file key seeds the fields, then every input key set on
// v overrides it. Empty string values never override the file.
func ConfigFromViper(v *viper.Viper) (*UpdaterConfig, error) {
	cfg := &UpdaterConfig{}

	if configFilePath := v.GetString("config-file"); configFilePath != "" {
		configFile, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		if cfg, err = ParseUpdaterConfig(configFile); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	}

	setString := func(dest *string, key string) {
		if s := v.GetString(key); s != "" {
			*dest = s
		}
	}
	setBool := func(dest *bool, key string) {
		if v.IsSet(key) && v.GetString(key) != "" {
			*dest = v.GetBool(key)
		}
	}

	setString(&cfg.GitHubToken, "github-token")
	setString(&cfg.GlobalJSONFile, "global-json-file")
	setString(&cfg.BranchName, "branch-name")
	setString(&cfg.Channel, "channel")
	setString(&cfg.CommitMessage, "commit-message")
	setString(&cfg.Labels, "labels")
	setString(&cfg.Quality, "quality")
	setString(&cfg.UserName, "user-name")
	setString(&cfg.UserEmail, "user-email")
	setString(&cfg.Repo, "repo")
	setBool(&cfg.DryRun, "dry-run")
	setBool(&cfg.GenerateStepSummary, "generate-step-summary")

	if cfg.GlobalJSONFile == "" {
		cfg.GlobalJSONFile = "global.json"
	}
	if cfg.UserName == "" {
		cfg.UserName = DefaultUserName
	}
	if cfg.UserEmail == "" {
		cfg.UserEmail = DefaultUserEmail
	}

	return cfg, nil
}

// Validate checks that a run can proceed. A dry run does not need a token.
func (c *UpdaterConfig) Validate() error {
	if c.GlobalJSONFile == "" {
		return errors.New("global.json file path must be specified")
	}
	if c.GitHubToken == "" && !c.DryRun {
		return errors.New("github token must be specified")
	}
	return nil
}

// LabelList splits the comma-separated labels input.
func (c *UpdaterConfig) LabelList() []string {
	if c.Labels == "" {
		return nil
	}
	var labels []string
	for _, label := range strings.Split(c.Labels, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
