package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aherreros/shopprobe/internal/browser"
	"github.com/aherreros/shopprobe/internal/config"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Playwright driver and browser binary",
	Long:  `Downloads the Playwright driver and the browser configured under browser.name, so CI images can pre-bake the binaries instead of downloading them on first run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log.Infof("Installing playwright driver and %s", cfg.Browser.Name)
		if err := browser.Install(cfg.Browser.Name); err != nil {
			return fmt.Errorf("install failed: %w", err)
		}

		log.Info("Install complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
