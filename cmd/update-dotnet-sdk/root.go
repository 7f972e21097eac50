package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-dotnet-sdk",
		Short: "update-dotnet-sdk keeps the .NET SDK pinned in global.json up to date",
		Long:  ``,
		Args:  cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().String("log-level", "info", "set the log level")

	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(VersionCmd())

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return cmd
}

// initConfig maps GitHub Actions inputs onto flags: with the INPUT prefix
// and the key replacer, the github-token key reads INPUT_GITHUB_TOKEN.
func initConfig() {
	viper.SetEnvPrefix("INPUT")
	viper.AutomaticEnv()
}
