package cmd

import (
	"github.com/bnema/propcast/internal/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	if err != nil {
		rootCmd := baseRootCmd()
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	return newRootCmdWithApp(app)
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "propcast",
		Short:         "Announce DAO governance proposals on Farcaster",
		Long:          "propcast watches a governor contract for new proposals and announces each one exactly once from a Farcaster bot account, tagging token holders in batched replies.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
}

func newRootCmdWithApp(app *app) *cobra.Command {
	rootCmd := baseRootCmd()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configFile, "config", "", "Config file (default $HOME/.config/propcast/config.toml)")
	flags.String("log-level", "", "Log level (trace|debug|info|warn|error)")
	flags.String("log-format", "", "Log format (text|json)")
	_ = app.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = app.viper.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newPlanCmd(app),
		newAudienceCmd(app),
		newConfigCmd(app),
		newSecretCmd(app),
	)

	return rootCmd
}
