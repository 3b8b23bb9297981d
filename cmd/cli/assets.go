package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newAssetsCmd(opts *rootOptions) *cobra.Command {
	assets := &cobra.Command{
		Use:   "assets",
		Short: "List and sync assets",
	}

	assets.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List synced assets",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}
			ctx := commandContext(c)

			assets, err := deps.ReferenceDataService.LoadAssets(ctx)
			if err != nil {
				return fmt.Errorf("Error loading assets: %w", err)
			}

			out := c.OutOrStdout()
			switch opts.output {
			case outputJson:
				return writeJson(out, assets)
			case outputCsv:
				return deps.CsvExportRepository.WriteAssets(out, assets)
			}
			rows := [][]string{}
			for _, a := range assets {
				refreshed := ""
				if !a.LastRefreshed.IsZero() {
					refreshed = a.LastRefreshed.Format(time.DateOnly)
				}
				rows = append(rows, []string{strconv.Itoa(int(a.ID)), a.Symbol, refreshed})
			}
			return writeTable(out, []string{"ID", "SYMBOL", "LAST REFRESHED"}, rows)
		},
	})

	assets.AddCommand(&cobra.Command{
		Use:   "sync SYMBOL",
		Short: "Sync market data for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}

			result, err := deps.AssetSyncService.Sync(commandContext(c), args[0])
			if err != nil {
				return err
			}

			if opts.output == outputJson {
				return writeJson(c.OutOrStdout(), result)
			}
			fmt.Fprintf(c.OutOrStdout(), "Synced %s through %s\n", args[0], result.Date)
			return nil
		},
	})

	return assets
}
