package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-scoring/internal/shared/telemetry"
)

const app = "scorectl"

// Actual version can be specified in build command.
var version = "unknown"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(app)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           app,
		Short:         "scorectl scores resume assets against job descriptions without a server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			telemetry.Init(v.GetString("log-level"), v.GetString("log-format"))
		},
	}

	root.PersistentFlags().String("asset", "", "path to an asset JSON file")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (json, console)")
	for _, name := range []string{"asset", "log-level", "log-format"} {
		_ = v.BindPFlag(name, root.PersistentFlags().Lookup(name))
	}

	root.AddCommand(
		newMatchCmd(v),
		newATSCmd(v),
		newCritiqueCmd(v),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s version: %s\n", app, version)
		},
	}
}
