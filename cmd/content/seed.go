package main

import (
	"time"

	"github.com/spf13/cobra"

	"healthinfo-api/core/content"
)

func newSeedCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with sample categories and pages of every kind",
		Long: `Writes sample categories and pages for every content kind.
Pages are upserted by slug, so seeding twice keeps view counts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := content.Seed(ctx, a.store, time.Now())
			if err != nil {
				return err
			}
			a.invalidate(ctx)

			cmd.Printf("Seeded %d pages into %s\n", n, a.cfg.Database.Path)
			return nil
		},
	}
}
