package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quazii/quaziiui-installer/internal/interfaces/di"
)

// NewUninstallCommand builds the uninstall subcommand. It removes an
// installed addon and touches nothing else.
func NewUninstallCommand(container *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove an installed QuaziiUI addon",
		Long: `Locates the World of Warcraft installation the same way install does
and removes the QuaziiUI addon directory. Prompts before removing
unless --force is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := buildRunConfig(cmd)

			rt := container.BuildRuntime(cfg)
			defer rt.Log.Close()

			target, err := rt.Locator.Locate(cfg.TargetRoot)
			if err != nil {
				rt.Log.Errorf("❌ %v", err)
				return err
			}

			if _, err := os.Stat(target.AddonDir.String()); os.IsNotExist(err) {
				rt.Log.Infof("No QuaziiUI installation at %s", target.AddonDir)
				return nil
			}

			if err := rt.Installer.RemoveExisting(target.AddonDir.String(), "QuaziiUI installation"); err != nil {
				rt.Log.Errorf("❌ Uninstall failed: %v", err)
				return err
			}

			rt.Log.Successf("✅ QuaziiUI removed from %s", target.AddonDir)
			return nil
		},
	}
}
