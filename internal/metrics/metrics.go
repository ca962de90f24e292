package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	TriggerSchedule = "schedule"
	TriggerCommand  = "command"
)

// Metrics keeps its own registry so tests and multiple instances never
// collide on the process-wide default registerer.
type Metrics struct {
	registry          *prometheus.Registry
	commandsTotal     *prometheus.CounterVec
	summaryRunsTotal  *prometheus.CounterVec
	areaFailuresTotal *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "practicasbot_commands_total",
				Help: "Recognized text commands handled, by command name",
			},
			[]string{"command"},
		),
		summaryRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "practicasbot_summary_runs_total",
				Help: "Daily summary runs, by trigger",
			},
			[]string{"trigger"},
		),
		areaFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "practicasbot_summary_area_failures_total",
				Help: "Areas skipped during a summary because the channel could not be read",
			},
			[]string{"area"},
		),
	}
	m.registry.MustRegister(m.commandsTotal, m.summaryRunsTotal, m.areaFailuresTotal)
	return m
}

func (m *Metrics) RecordCommand(command string) {
	if m == nil {
		return
	}
	m.commandsTotal.WithLabelValues(command).Inc()
}

func (m *Metrics) RecordSummaryRun(trigger string) {
	if m == nil {
		return
	}
	m.summaryRunsTotal.WithLabelValues(trigger).Inc()
}

func (m *Metrics) RecordAreaFailure(area string) {
	if m == nil {
		return
	}
	m.areaFailuresTotal.WithLabelValues(area).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
