package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seopro/internal/audit"
	"seopro/internal/seo"
)

func auditCmd() *cobra.Command {
	var (
		pageURL  string
		filePath string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit a page or HTML file for SEO problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (pageURL == "") == (filePath == "") {
				return fmt.Errorf("exactly one of --url or --file is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			eng := seo.New(cfg, seo.Options{})

			var report audit.Report
			if filePath != "" {
				html, err := os.ReadFile(filePath)
				if err != nil {
					return fmt.Errorf("reading %s: %w", filePath, err)
				}
				report = eng.AuditHTML(string(html))
			} else {
				th := eng.Thresholds()
				monitor := audit.NewMonitor(audit.MonitorOptions{Thresholds: &th})
				res, err := monitor.Check(cmd.Context(), pageURL)
				if err != nil {
					return err
				}
				if res.Status != "success" {
					return fmt.Errorf("fetching %s: %s", pageURL, res.Error)
				}
				report = res.Report
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(cmd, report)
			}

			cmd.SilenceUsage = true
			if len(report.Issues) > 0 {
				return fmt.Errorf("audit found %d issue(s)", len(report.Issues))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pageURL, "url", "", "Audit a live page")
	cmd.Flags().StringVar(&filePath, "file", "", "Audit a local HTML file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	return cmd
}

func printReport(cmd *cobra.Command, report audit.Report) {
	for _, issue := range report.Issues {
		cmd.Printf("ISSUE    %s\n", issue)
	}
	for _, warning := range report.Warnings {
		cmd.Printf("WARNING  %s\n", warning)
	}
	for _, passed := range report.Passed {
		cmd.Printf("ok       %s\n", passed)
	}
}
