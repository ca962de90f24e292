package bot

import (
	"github.com/foxseedlab/practicasbot/internal/config"
	"github.com/foxseedlab/practicasbot/internal/discord"
	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/foxseedlab/practicasbot/internal/repository"
	"github.com/foxseedlab/practicasbot/internal/summary"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Dispatcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		dc := do.MustInvoke[discord.Client](i)
		repo := do.MustInvoke[repository.MeetingRepository](i)
		agg := do.MustInvoke[*summary.Aggregator](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		return NewDispatcher(dc, repo, agg, m, cfg.AnnouncementsChannelID), nil
	})
}
