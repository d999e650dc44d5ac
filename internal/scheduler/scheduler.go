package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
	"github.com/mauv0809/puckpal/internal/metrics"
)

// DefaultLeaderboardCron posts the leaderboard on Fridays at 18:00.
const DefaultLeaderboardCron = "0 18 * * 5"

const runTimeout = time.Minute

// Poster publishes the leaderboard.
type Poster interface {
	PostLeaderboard(ctx context.Context, dryRun bool) error
}

// Scheduler runs the recurring leaderboard post.
type Scheduler struct {
	sched   gocron.Scheduler
	poster  Poster
	metrics metrics.Metrics
}

// New registers the leaderboard job on crontab. An empty crontab uses
// DefaultLeaderboardCron. The scheduler is not started.
func New(crontab string, poster Poster, metrics metrics.Metrics, opts ...gocron.SchedulerOption) (*Scheduler, error) {
	if crontab == "" {
		crontab = DefaultLeaderboardCron
	}
	sched, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	s := &Scheduler{sched: sched, poster: poster, metrics: metrics}

	_, err = sched.NewJob(
		gocron.CronJob(crontab, false),
		gocron.NewTask(s.run),
		gocron.WithName("weekly-leaderboard"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		sched.Shutdown()
		return nil, fmt.Errorf("failed to schedule leaderboard %q: %w", crontab, err)
	}
	log.Info("Scheduled leaderboard post", "cron", crontab)
	return s, nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.sched.Start()
}

// Shutdown stops the scheduler and waits for running jobs.
func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

// Jobs returns the names of the registered jobs.
func (s *Scheduler) Jobs() []string {
	jobs := s.sched.Jobs()
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name())
	}
	return names
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	s.metrics.IncScheduledRuns()
	if err := s.poster.PostLeaderboard(ctx, false); err != nil {
		log.Error("Scheduled leaderboard post failed", "error", err)
	}
}
