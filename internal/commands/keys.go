package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kitchenkiosk/internal/config"
	"kitchenkiosk/internal/keys"
)

func addKeys(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the hardware key bindings",
		Example: `
kiosk keys
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return keys.WriteLegend(cmd.OutOrStdout(), keys.NewKeyMap(cfg.Keys))
		},
	}

	topLevel.AddCommand(cmd)
}
