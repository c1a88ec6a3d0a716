package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	log     *logrus.Logger
)

// rootCmd is the base command for shopprobe.
var rootCmd = &cobra.Command{
	Use:   "shopprobe",
	Short: "Browser E2E suite tooling for the demo storefront",
	Long: `shopprobe carries the setup and inspection tooling around the
browser end-to-end suites in tests/e2e: config validation, browser
driver installation and run-report rendering.

The suites themselves run through the test runner:

    go test -tags e2e ./tests/e2e/...

Everything is driven by a YAML configuration file (shopprobe.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "shopprobe.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	log = logrus.New()
	log.SetLevel(logrus.InfoLevel)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
