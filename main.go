package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/config"
	"github.com/mauv0809/puckpal/internal/database"
	"github.com/mauv0809/puckpal/internal/drafter"
	server "github.com/mauv0809/puckpal/internal/http"
	"github.com/mauv0809/puckpal/internal/league"
	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/notifier/slack"
	"github.com/mauv0809/puckpal/internal/processor"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/scheduler"
	"github.com/mauv0809/puckpal/internal/tournament"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		db.Close()
	}()

	clubStore := club.New(db)
	tournamentStore := tournament.New(db)
	activity := metrics.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	deps := league.Deps{
		Club:        clubStore,
		Tournaments: tournamentStore,
		Metrics:     metricsSvc,
		Activity:    activity,
	}
	if cfg.Gemini.APIKey != "" {
		draftClient, err := drafter.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("Failed to initialize drafter: %s", err)
		}
		deps.Drafter = draftClient
	} else {
		log.Warn("GEMINI_API_KEY not set, tournament drafting and team suggestions are disabled")
	}
	var events pubsub.PubSubClient
	if cfg.ProjectID != "" {
		events, err = pubsub.New(context.Background(), cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer events.Close()
		deps.PubSub = events
	} else {
		log.Warn("GCP_PROJECT not set, events will not be published")
	}

	leagueSvc := league.New(deps, league.WithTimeout(cfg.StoreTimeout))
	processor := processor.New(leagueSvc, notifier, activity)

	sched, err := scheduler.New(cfg.LeaderboardCron, processor, metricsSvc)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %s", err)
	}
	sched.Start()
	defer func() {
		if err := sched.Shutdown(); err != nil {
			log.Error("Scheduler shutdown failed", "error", err)
		}
	}()

	s := server.NewServer(
		leagueSvc,
		metricsHandler,
		cfg,
		notifier,
		processor,
		events,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
