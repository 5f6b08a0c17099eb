package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const configTemplate = `defaults:
  title: "Web Application"
  description: "A web application"
  keywords: "web, application"
  robots: "index, follow"

open_graph:
  type: website
  site_name: "Web Application"
  locale: en_US

twitter:
  card: summary_large_image

robots:
  user_agent: "*"
  disallow:
    - /admin
    - /api
  allow:
    - /
  sitemap: /sitemap.xml

sitemap:
  base_url: ""
  priority: "0.8"
  changefreq: weekly
  urls: []

database:
  driver: sqlite
  dsn: sqlite://seopro.db

cache:
  backend: memory
  ttl_seconds: 3600

server:
  addr: ":8080"
`

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists", configPath)
			}
			if err := os.WriteFile(configPath, []byte(configTemplate), 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", configPath, err)
			}
			cmd.Printf("wrote %s\n", configPath)
			return nil
		},
	}
}
