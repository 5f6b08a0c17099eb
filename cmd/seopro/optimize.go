package main

import (
	"github.com/spf13/cobra"

	"seopro/internal/seo"
	"seopro/internal/store"
)

func optimizeCmd() *cobra.Command {
	var (
		entityType string
		dryRun     bool
	)
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Normalize titles, descriptions, and keywords across stored records",
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

			summaries, err := db.List(ctx, entityType, 0, 0)
			if err != nil {
				return err
			}

			var changed int
			for _, summary := range summaries {
				rec, err := db.Get(ctx, summary.Entity)
				if err != nil {
					return err
				}

				eng := seo.New(cfg, seo.Options{})
				seo.Hydrate(eng.Meta(), rec, nil)
				eng.Optimize()

				patch := optimizePatch(rec, eng)
				if len(patch) == 0 {
					continue
				}
				changed++
				if dryRun {
					cmd.Printf("%s: would update %d field(s)\n", summary.Entity, len(patch))
					continue
				}
				if _, err := db.Upsert(ctx, summary.Entity, patch); err != nil {
					return err
				}
				cmd.Printf("%s: updated %d field(s)\n", summary.Entity, len(patch))
			}

			cmd.Printf("%d of %d record(s) needed changes\n", changed, len(summaries))
			return nil
		},
	}
	cmd.Flags().StringVar(&entityType, "type", "", "Only optimize records of this entity type")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing them")
	return cmd
}

// optimizePatch diffs the optimized metadata against the stored record.
// Only fields the record had set are written back; the optimizer's
// backfilled values stay render-time only.
func optimizePatch(rec *store.Record, eng *seo.Engine) store.Patch {
	patch := store.Patch{}
	ms := eng.Meta()
	if rec.Title != "" && ms.Title() != rec.Title {
		patch["title"] = ms.Title()
	}
	if rec.Description != "" && ms.Description() != rec.Description {
		patch["description"] = ms.Description()
	}
	if rec.Keywords != "" && ms.Keywords() != rec.Keywords {
		patch["keywords"] = ms.Keywords()
	}
	return patch
}
