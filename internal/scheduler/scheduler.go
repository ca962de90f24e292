package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foxseedlab/practicasbot/internal/summary"
	"github.com/teambition/rrule-go"
)

type Job func(ctx context.Context)

// Scheduler fires a job once per calendar day at a fixed wall-clock time in
// a fixed timezone. Runs missed while the process is down are not replayed.
type Scheduler struct {
	hour   int
	minute int
	loc    *time.Location
	job    Job
	now    func() time.Time
}

func New(hour, minute int, loc *time.Location, job Job) (*Scheduler, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("invalid daily time %02d:%02d", hour, minute)
	}
	if loc == nil {
		return nil, fmt.Errorf("scheduler location is required")
	}
	return &Scheduler{
		hour:   hour,
		minute: minute,
		loc:    loc,
		job:    job,
		now:    time.Now,
	}, nil
}

// NextRun returns the first occurrence strictly after t.
func (s *Scheduler) NextRun(t time.Time) time.Time {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.DAILY,
		Dtstart:  summary.StartOfDay(t, s.loc),
		Byhour:   []int{s.hour},
		Byminute: []int{s.minute},
		Bysecond: []int{0},
	})
	if err != nil {
		// Only reachable with out-of-range options, which New rejects.
		panic(fmt.Sprintf("scheduler: invalid daily rule: %v", err))
	}
	return rule.After(t, false)
}

func (s *Scheduler) Run(ctx context.Context) error {
	for {
		now := s.now()
		next := s.NextRun(now)
		slog.Info("daily summary scheduled", "next_run", next.Format(time.RFC3339), "timezone", s.loc.String())
		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("scheduler stopped")
			return nil
		case <-timer.C:
			s.runJob(ctx)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("scheduled job panicked", "panic", r)
		}
	}()
	s.job(ctx)
}
