package health

import (
	"github.com/foxseedlab/practicasbot/internal/config"
	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/samber/do/v2"
)

type MetricsServer struct {
	*Server
}

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewLivenessServer(cfg.Port), nil
	})
	do.Provide(injector, func(i do.Injector) (*MetricsServer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.MetricsPort == 0 {
			return &MetricsServer{}, nil
		}
		m := do.MustInvoke[*metrics.Metrics](i)
		return &MetricsServer{Server: NewMetricsServer(cfg.MetricsPort, m.Handler())}, nil
	})
}
