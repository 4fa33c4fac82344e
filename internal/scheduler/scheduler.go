package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/rajeshacpt/Invest-Guru/internal/app"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the watch-mode cron tasks: a periodic sweep that fetches a
// fresh quote for every watchlist symbol.
type Scheduler struct {
	Cron       *cron.Cron
	Controller *app.Controller
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, ctrl *app.Controller) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Controller: ctrl,
		Ctx:        ctx,
	}
}

// RegisterAll registers the quote sweep on the given cron expression.
func (s *Scheduler) RegisterAll(quoteCron string) error {
	if _, err := s.Cron.AddFunc(quoteCron, s.quoteSweep); err != nil {
		return fmt.Errorf("register quote sweep: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunSweepNow executes the quote sweep immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunSweepNow() {
	s.quoteSweep()
}

func (s *Scheduler) quoteSweep() {
	if s.Ctx.Err() != nil {
		return
	}
	if s.Controller.State() != app.StateAuthenticated {
		log.Println("[INFO] quote sweep skipped: not authenticated")
		return
	}

	items := s.Controller.Watchlist()
	if len(items) == 0 {
		log.Println("[INFO] quote sweep: watchlist empty")
		return
	}

	log.Printf("[INFO] quote sweep: %d symbols", len(items))
	for _, item := range items {
		if s.Ctx.Err() != nil {
			return
		}
		if err := s.Controller.FetchQuote(item.Symbol); err != nil {
			log.Printf("[WARN] sweep %s: %v", item.Symbol, err)
			continue
		}
		if q := s.Controller.Quote(); q != nil && q.Symbol == item.Symbol {
			log.Printf("[INFO] %s close=%s volume=%s (%s %s)", q.Symbol, q.Close, q.Volume, q.Date, q.Time)
		}
	}
}
