package main

import (
	"context"
	"cryptodashboard/cmd"
	"cryptodashboard/internal"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cryptodashboard",
		Short: "Inspect the portfolio pipeline from the command line",
	}
	rootCmd.AddCommand(portfolioCmd(), assetsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func portfolioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Compute and print a full portfolio snapshot",
		Run: func(c *cobra.Command, args []string) {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				log.Fatal(err)
			}
			defer cmd.CloseDependencies(handler)

			snapshot, err := handler.PortfolioService.Snapshot(context.Background())
			if err != nil {
				log.Fatal(err)
			}

			internal.Pprint(snapshot.Summary)
			internal.Pprint(snapshot.Distribution)
		},
	}
}

func assetsCmd() *cobra.Command {
	var limit int
	c := &cobra.Command{
		Use:   "assets",
		Short: "Print the top market assets from the price feed",
		Run: func(c *cobra.Command, args []string) {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				log.Fatal(err)
			}
			defer cmd.CloseDependencies(handler)

			assets, err := handler.CoinCapRepository.ListTopAssets(context.Background(), limit)
			if err != nil {
				log.Fatal(err)
			}

			internal.Pprint(assets)
		},
	}
	c.Flags().IntVar(&limit, "limit", 20, "number of assets to list")
	return c
}
