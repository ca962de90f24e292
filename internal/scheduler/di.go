package scheduler

import (
	"github.com/foxseedlab/practicasbot/internal/config"
	"github.com/foxseedlab/practicasbot/internal/discord"
	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/foxseedlab/practicasbot/internal/summary"
	"github.com/foxseedlab/practicasbot/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*DailySummary, error) {
		cfg := do.MustInvoke[*config.Config](i)
		dc := do.MustInvoke[discord.Client](i)
		agg := do.MustInvoke[*summary.Aggregator](i)
		wh := do.MustInvoke[webhook.Sender](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		return NewDailySummary(dc, agg, wh, m, cfg.AnnouncementsChannelID), nil
	})
	do.Provide(injector, func(i do.Injector) (*Scheduler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		job := do.MustInvoke[*DailySummary](i)
		hour, minute, err := cfg.SummaryClock()
		if err != nil {
			return nil, err
		}
		return New(hour, minute, cfg.SummaryLocation(), job.Run)
	})
}
