// Command ingest is the Kickstats snapshot ingestion CLI.
//
// Usage:
//
//	kickstats-ingest load --db database.sqlite
//	kickstats-ingest load --db database.sqlite --skip-attributes
//	kickstats-ingest load --db database.sqlite --attribute-limit 10000
//	kickstats-ingest summary
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kickstats/kickstats-data/internal/config"
	"github.com/kickstats/kickstats-data/internal/db"
	"github.com/kickstats/kickstats-data/internal/ingest"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "kickstats-ingest",
		Short: "Kickstats snapshot ingestion CLI",
	}

	root.AddCommand(loadCmd())
	root.AddCommand(summaryCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// load command
// --------------------------------------------------------------------------

func loadCmd() *cobra.Command {
	var (
		dbPath         string
		skipAttributes bool
		attributeLimit int
	)
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the SQLite snapshot into Postgres (replaces existing data)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("--db is required")
			}
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				src, err := ingest.OpenSource(dbPath)
				if err != nil {
					return err
				}
				defer src.Close()

				loader := ingest.NewLoader(src, pool.Pool, logger)
				start := time.Now()
				result, err := loader.LoadAll(ctx, ingest.Options{
					SkipAttributes: skipAttributes,
					AttributeLimit: attributeLimit,
				})
				if err != nil {
					return err
				}
				logger.Info("Load finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("load error", "error", e)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the SQLite snapshot")
	cmd.Flags().BoolVar(&skipAttributes, "skip-attributes", false, "Skip the player_attributes table")
	cmd.Flags().IntVar(&attributeLimit, "attribute-limit", 0, "Cap loaded attribute rows (0 = all)")
	return cmd
}

// --------------------------------------------------------------------------
// summary command
// --------------------------------------------------------------------------

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print row counts for the loaded tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				tables := []string{
					config.CountriesTable, config.LeaguesTable, config.TeamsTable,
					config.PlayersTable, config.MatchesTable, config.AttributesTable,
				}
				for _, table := range tables {
					var count int64
					if err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&count); err != nil {
						return fmt.Errorf("count %s: %w", table, err)
					}
					fmt.Printf("%-20s %d\n", table, count)
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runIngest handles config loading, DB connection, and context cancellation.
func runIngest(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
