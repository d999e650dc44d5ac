package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/config"
	"github.com/mauv0809/puckpal/internal/database"
	"github.com/mauv0809/puckpal/internal/league"
	"github.com/spf13/cobra"
)

var rosterFile string

var rootCmd = &cobra.Command{
	Use:   "puckpal-seeder",
	Short: "Seed the player roster from a YAML file",
	Long: `Adds every player listed in the roster file to the database.
Players that already exist are left untouched, so the seeder can be run
repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		path := rosterFile
		if path == "" {
			path = cfg.RosterFile
		}
		return seed(cmd.Context(), cfg, path)
	},
}

func init() {
	rootCmd.Flags().StringVar(&rosterFile, "file", "", "Roster file to load (defaults to ROSTER_FILE)")
}

func seed(ctx context.Context, cfg config.Config, path string) error {
	log.Info("Starting roster seeder...", "file", path)
	roster, err := LoadRoster(path)
	if err != nil {
		return err
	}

	db, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	svc := league.New(league.Deps{Club: club.New(db)}, league.WithTimeout(cfg.StoreTimeout))
	start := time.Now()
	added, err := svc.SeedPlayers(ctx, roster.toPlayers())
	if err != nil {
		return fmt.Errorf("failed to seed players: %w", err)
	}
	log.Info("Roster seeded", "listed", len(roster.Players), "added", added, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("Seeder failed", "error", err)
		os.Exit(1)
	}
}
