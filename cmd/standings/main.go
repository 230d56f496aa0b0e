package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/vncsmyrnk/awards/internal/adapters/repository"
	"github.com/vncsmyrnk/awards/internal/config"
	"github.com/vncsmyrnk/awards/internal/core/services"
	"github.com/vncsmyrnk/awards/pkg/logging"
)

// Prints the vote tallies of every category from the configured store.
func main() {
	category := flag.String("category", "", "only print this category id")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stores, err := repository.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open catalog", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	admin := services.NewAdminService(services.NewCatalogService(stores.Catalog), stores.Dashboard)
	rows, err := admin.Export(ctx)
	if err != nil {
		slog.Error("failed to load standings", "error", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tCANDIDATE\tVOTES")
	for _, row := range rows {
		if *category != "" && row.CategoryID != *category {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.CategoryName, row.CandidateName, row.Votes)
	}
	tw.Flush()
}
