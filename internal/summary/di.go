package summary

import (
	"time"

	"github.com/foxseedlab/practicasbot/internal/config"
	"github.com/foxseedlab/practicasbot/internal/discord"
	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Aggregator, error) {
		cfg := do.MustInvoke[*config.Config](i)
		dc := do.MustInvoke[discord.Client](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		// "Today" follows the process timezone, not SUMMARY_TIMEZONE.
		return NewAggregator(dc, cfg.Areas, time.Local, m), nil
	})
}
