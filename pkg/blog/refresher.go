package blog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/resignly/pkg/logger"
)

// DefaultSchedule reloads the blog every 15 minutes.
const DefaultSchedule = "*/15 * * * *"

const refreshTimeout = time.Minute

// Refresher reloads a Store on a cron schedule. A run that is still going
// when the next one is due is skipped.
type Refresher struct {
	store  *Store
	cron   *cron.Cron
	next   cron.Schedule
	logger *slog.Logger
}

// NewRefresher parses schedule, a five-field cron expression or a
// descriptor such as "@hourly" or "@every 10m".
func NewRefresher(store *Store, schedule string, l *slog.Logger) (*Refresher, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	sched, err := parser.Parse(schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}

	r := &Refresher{
		store:  store,
		next:   sched,
		logger: logger.Component(l, "blog.refresher"),
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}
	r.cron.Schedule(sched, cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		_ = r.Refresh(ctx)
	}))

	return r, nil
}

// Refresh reloads the store once.
func (r *Refresher) Refresh(ctx context.Context) error {
	start := time.Now()
	if err := r.store.Load(ctx); err != nil {
		r.logger.WarnContext(ctx, "blog refresh failed, keeping previous posts", slog.Any("error", err))
		return err
	}
	r.logger.DebugContext(ctx, "blog refreshed", slog.Duration("took", time.Since(start)))
	return nil
}

// Next returns the first run after t.
func (r *Refresher) Next(t time.Time) time.Time {
	return r.next.Next(t)
}

// Start begins running the schedule in the background.
func (r *Refresher) Start(context.Context) error {
	r.cron.Start()
	return nil
}

// Shutdown stops the schedule and waits for a running refresh to finish or
// for ctx to end.
func (r *Refresher) Shutdown(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
