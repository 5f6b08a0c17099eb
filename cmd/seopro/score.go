package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"seopro/internal/seo"
	"seopro/internal/store"
)

func scoreCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "score <type> <id>",
		Short: "Compute the completeness score for a stored record",
		Args:  cobra.ExactArgs(2),
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
			ref := store.EntityRef{Type: args[0], ID: args[1]}
			if _, err := eng.LoadRecord(ctx, ref); err != nil {
				return err
			}
			eng.Optimize()

			score := eng.Score()
			recs := eng.Recommendations()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"entity":          ref,
					"score":           score,
					"recommendations": recs,
				})
			}

			cmd.Printf("%s scores %d/100\n", ref, score)
			for _, rec := range recs {
				cmd.Printf("  - %s\n", rec)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the result as JSON")
	return cmd
}
