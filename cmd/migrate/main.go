// Command migrate applies the SQL migrations in migrations/ to the database
// configured through the environment, using the atlas CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"coupon-ledger/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://migrations",
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied", "target", res.Target, "applied", len(res.Applied))
}
