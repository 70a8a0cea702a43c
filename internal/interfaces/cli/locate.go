package cli

import (
	"github.com/spf13/cobra"

	"github.com/quazii/quaziiui-installer/internal/interfaces/di"
)

// NewLocateCommand builds the locate subcommand. It reports where the
// installer would deploy without changing anything.
func NewLocateCommand(container *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Show the World of Warcraft installation the installer would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := buildRunConfig(cmd)

			rt := container.BuildRuntime(cfg)
			defer rt.Log.Close()

			target, err := rt.Locator.Locate(cfg.TargetRoot)
			if err != nil {
				rt.Log.Errorf("❌ %v", err)
				return err
			}

			rt.Log.Infof("Installation root: %s", target.Root)
			rt.Log.Infof("Addon directory: %s", target.AddonDir)
			return nil
		},
	}
}
