// Package commands builds the kiosk command line.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"kitchenkiosk/internal/config"
)

// New returns the root command. Running it without a subcommand starts the
// kiosk UI.
func New() *cobra.Command {
	v := config.New()
	cmd := &cobra.Command{
		Use:   "kiosk",
		Short: base.Wrap80("Kitchen kiosk: timers and the shopping list, driven by a key pad."),
		Long: base.Wrap80("Runs the kiosk in the terminal. Settings come from .kiosk.yaml " +
			"(searched in $KIOSK_CONFIG_PATH, ~/.config/kiosk and the working directory), " +
			"KIOSK_* environment variables and the flags below."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runUI(cmd.Context(), cfg)
		},
	}
	addConfigFlags(cmd, v)
	AddCommands(cmd, v)
	return cmd
}

// AddCommands registers the subcommands on topLevel.
func AddCommands(topLevel *cobra.Command, v *viper.Viper) {
	addKeys(topLevel, v)
	addTimer(topLevel, v)
	addList(topLevel, v)
	addProduct(topLevel, v)
	addCategory(topLevel, v)
	addVersion(topLevel)
}

// addConfigFlags binds persistent flags to their viper keys so a flag
// overrides the file and the environment.
func addConfigFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.PersistentFlags()
	f.String("backend", config.BackendHTTP, "Data backend. One of 'http' or 'local'.")
	f.String("api-url", "", "Base URL of the kiosk REST API.")
	f.String("store", "", "Directory of the local store.")
	f.String("log-file", "", "Write debug logs to this file.")

	for flag, key := range map[string]string{
		"backend":  "backend",
		"api-url":  "api.base_url",
		"store":    "store.path",
		"log-file": "log.file",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
}
