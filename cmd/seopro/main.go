package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"seopro/internal/config"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "seopro",
		Short: "SEO metadata engine and toolkit",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "seopro.yaml", "Path to the configuration file")
	root.AddCommand(initCmd())
	root.AddCommand(robotsCmd())
	root.AddCommand(sitemapCmd())
	root.AddCommand(auditCmd())
	root.AddCommand(optimizeCmd())
	root.AddCommand(scoreCmd())
	root.AddCommand(attachCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(mcpCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig falls back to the built-in defaults when the file does
// not exist, so read-only commands work in an uninitialized directory.
func loadConfig() (*config.SeoConfig, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
