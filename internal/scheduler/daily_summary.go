package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/foxseedlab/practicasbot/internal/discord"
	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/foxseedlab/practicasbot/internal/summary"
	"github.com/foxseedlab/practicasbot/internal/webhook"
)

type Announcer interface {
	ResolveChannel(channelID string) (*discord.Channel, error)
	SendChannelMessage(channelID, content string) error
}

type SummaryCollector interface {
	Collect(ctx context.Context) summary.Summary
}

type DailySummary struct {
	announcer              Announcer
	collector              SummaryCollector
	webhook                webhook.Sender
	metrics                *metrics.Metrics
	announcementsChannelID string
}

func NewDailySummary(announcer Announcer, collector SummaryCollector, wh webhook.Sender, m *metrics.Metrics, announcementsChannelID string) *DailySummary {
	return &DailySummary{
		announcer:              announcer,
		collector:              collector,
		webhook:                wh,
		metrics:                m,
		announcementsChannelID: announcementsChannelID,
	}
}

func (d *DailySummary) Run(ctx context.Context) {
	slog.Info("running daily summary", "channel_id", d.announcementsChannelID)
	ch, err := d.announcer.ResolveChannel(d.announcementsChannelID)
	if err != nil {
		slog.Error("failed to resolve announcements channel", "error", err, "channel_id", d.announcementsChannelID)
		return
	}
	if ch == nil {
		slog.Warn("announcements channel not found; skipping daily summary", "channel_id", d.announcementsChannelID)
		return
	}

	d.metrics.RecordSummaryRun(metrics.TriggerSchedule)
	s := d.collector.Collect(ctx)
	report := s.Text()
	if err := d.announcer.SendChannelMessage(d.announcementsChannelID, report); err != nil {
		slog.Error("failed to post daily summary", "error", err, "channel_id", d.announcementsChannelID)
	}
	if d.webhook == nil {
		return
	}
	if err := d.webhook.SendSummary(ctx, buildWebhookPayload(s, report)); err != nil {
		slog.Error("failed to send summary webhook", "error", err)
	}
}

func buildWebhookPayload(s summary.Summary, report string) webhook.SummaryWebhookPayload {
	timezone := ""
	if s.Location != nil {
		timezone = s.Location.String()
	}
	areas := make([]webhook.SummaryWebhookArea, 0, len(s.Sections))
	for _, sec := range s.Sections {
		uploads := make([]webhook.SummaryWebhookUpload, 0, len(sec.Uploads))
		for _, u := range sec.Uploads {
			uploads = append(uploads, webhook.SummaryWebhookUpload{AuthorID: u.AuthorID, Files: u.FileNames})
		}
		areas = append(areas, webhook.SummaryWebhookArea{Area: sec.Area, Uploads: uploads})
	}
	return webhook.SummaryWebhookPayload{
		SchemaVersion: webhook.SummaryWebhookSchemaVersion,
		GeneratedAt:   s.GeneratedAt.Format(time.RFC3339),
		Timezone:      timezone,
		Report:        report,
		Areas:         areas,
	}
}
