package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seopro/internal/seo"
)

func sitemapCmd() *cobra.Command {
	var (
		outPath  string
		advanced bool
	)
	cmd := &cobra.Command{
		Use:   "generate-sitemap",
		Short: "Render the XML sitemap from configuration and stored records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close(ctx)

			eng := seo.New(cfg, seo.Options{Records: db})
			var body string
			if advanced {
				body, err = eng.GenerateAdvancedSitemap(ctx)
			} else {
				body, err = eng.GenerateSitemap(ctx)
			}
			if err != nil {
				return err
			}

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
	cmd.Flags().BoolVar(&advanced, "advanced", false, "Include image and news extensions")
	return cmd
}
