package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seopro/internal/seo"
)

func robotsCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "generate-robots",
		Short: "Render robots.txt from the configured rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			body := seo.New(cfg, seo.Options{}).GenerateRobots()

			if outPath == "" {
				cmd.Print(body)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(body), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			cmd.Printf("wrote %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "path", "", "Write to a file instead of stdout")
	return cmd
}
