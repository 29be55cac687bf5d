package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"healthinfo-api/core/content"
	"healthinfo-api/core/workers"
	stdhttp "healthinfo-api/infrastructure/http/standard"
)

func newImportCmd(opts *globalOptions) *cobra.Command {
	var (
		file       string
		maxWorkers int
	)

	cmd := &cobra.Command{
		Use:   "import [feed-url...]",
		Short: "Import news items from RSS or Atom feeds",
		Long: `Fetches feeds and saves their items as live news pages.
Items are upserted by slug derived from the title. Several feeds are
fetched concurrently; a failing feed does not stop the others.

Examples:
  content import https://example.com/health/rss.xml
  content import --workers 8 https://a.example.com/rss https://b.example.com/atom
  content import --file ./feed.xml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) > 0) == (file != "") {
				return errors.New("give either feed URLs or --file")
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			importer := content.NewImporter(a.deps(stdhttp.NewStandardHTTPClient(a.cfg.Upstream.Timeout)))

			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()

				result, err := importer.ImportReader(ctx, f)
				if err != nil {
					return err
				}
				a.invalidate(ctx)
				cmd.Printf("Imported %d items, skipped %d\n", result.Imported, result.Skipped)
				return nil
			}

			pool := workers.NewImportPool(importer, workers.PoolConfig{MaxWorkers: maxWorkers})
			pool.Start()
			results := pool.ImportAll(ctx, args)
			pool.Stop()

			var total content.ImportResult
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					a.logger.Error("Feed import failed", map[string]interface{}{
						"url":   r.URL,
						"error": r.Err.Error(),
					})
					cmd.Printf("%s: %v\n", r.URL, r.Err)
					continue
				}
				total.Imported += r.Result.Imported
				total.Skipped += r.Result.Skipped
			}
			if total.Imported > 0 {
				a.invalidate(ctx)
			}

			cmd.Printf("Imported %d items, skipped %d\n", total.Imported, total.Skipped)
			if failed > 0 {
				return fmt.Errorf("%d of %d feeds failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read a feed from a local file")
	cmd.Flags().IntVarP(&maxWorkers, "workers", "w", workers.DefaultPoolConfig().MaxWorkers, "feeds fetched concurrently")
	return cmd
}
