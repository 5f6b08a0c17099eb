package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const attachTemplate = `package %s

import (
	"fmt"

	"seopro/internal/store"
)

// SeoKey identifies this %s in the SEO record store.
func (x *%s) SeoKey() store.EntityRef {
	return store.EntityRef{Type: %q, ID: fmt.Sprint(x.ID)}
}

// SeoTitle supplies a fallback title when the stored record has none.
func (x *%s) SeoTitle() string {
	return ""
}

// SeoURL supplies the canonical URL used for rendering and sitemaps.
func (x *%s) SeoURL() string {
	return ""
}
`

func attachCmd() *cobra.Command {
	var (
		structName string
		pkgName    string
		outPath    string
	)
	cmd := &cobra.Command{
		Use:   "attach <entity-type>",
		Short: "Generate a provider stub wiring a Go struct to the engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType := args[0]
			if entityType == "" {
				return fmt.Errorf("entity type is required")
			}
			if structName == "" {
				structName = strings.ToUpper(entityType[:1]) + entityType[1:]
			}
			if outPath == "" {
				outPath = strings.ToLower(structName) + "_seo.go"
			}
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists", outPath)
			}

			src := fmt.Sprintf(attachTemplate,
				pkgName, entityType, structName, entityType, structName, structName)
			if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			cmd.Printf("wrote %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&structName, "struct", "", "Go struct name (defaults to the capitalized entity type)")
	cmd.Flags().StringVar(&pkgName, "package", "main", "Package name for the generated file")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file path")
	return cmd
}
