package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aherreros/shopprobe/internal/config"
	"github.com/aherreros/shopprobe/internal/report"
)

var summaryFile string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a run summary into Markdown and HTML reports",
	Long:  `Reads the JSON run summary written by the E2E suite and renders the Markdown and HTML report files configured under report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := summaryFile
		if path == "" {
			path = filepath.Join(cfg.Report.Directory, "run_summary.json")
		}

		summary, err := report.LoadSummary(path)
		if err != nil {
			return fmt.Errorf("failed to load summary: %w", err)
		}

		writer, err := report.NewWriter()
		if err != nil {
			return err
		}
		if err := writer.WriteFiles(summary, cfg.Report.Directory, cfg.Report.MarkdownFile, cfg.Report.HTMLFile); err != nil {
			return fmt.Errorf("failed to write reports: %w", err)
		}

		passed, failed, skipped := summary.Counts()
		if summary.Passed() {
			color.Green("%s: %d passed, %d failed, %d skipped", summary.Title, passed, failed, skipped)
		} else {
			color.Red("%s: %d passed, %d failed, %d skipped", summary.Title, passed, failed, skipped)
		}
		log.Infof("Reports written to %s", cfg.Report.Directory)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&summaryFile, "summary", "", "path to the JSON run summary (defaults to <report.directory>/run_summary.json)")
	rootCmd.AddCommand(reportCmd)
}
