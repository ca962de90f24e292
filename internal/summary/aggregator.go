package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/foxseedlab/practicasbot/internal/config"
	"github.com/foxseedlab/practicasbot/internal/discord"
	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FetchLimit caps how many recent messages are inspected per area. Uploads
// older than the newest FetchLimit messages of a channel are not reported.
const FetchLimit = 100

const (
	messageNoUploads        = "No se subieron archivos hoy en ninguna área."
	sectionHeaderFormat     = "\n**AREA %s**\n"
	uploadLineFormat        = "--> Se subió(s) archivo(s) %s por <@%s>\n"
	attachmentNameSeparator = ", "
)

type ChannelReader interface {
	ResolveChannel(channelID string) (*discord.Channel, error)
	FetchRecentMessages(channelID string, limit int) ([]discord.Message, error)
}

type Upload struct {
	AuthorID  string
	FileNames []string
}

type Section struct {
	Area    string
	Uploads []Upload
}

type Summary struct {
	GeneratedAt time.Time
	Location    *time.Location
	Sections    []Section
}

func (s Summary) Empty() bool {
	return len(s.Sections) == 0
}

// Text renders the report posted to Discord.
func (s Summary) Text() string {
	if s.Empty() {
		return messageNoUploads
	}
	upper := cases.Upper(language.Spanish)
	var b strings.Builder
	for _, sec := range s.Sections {
		fmt.Fprintf(&b, sectionHeaderFormat, upper.String(sec.Area))
		for _, u := range sec.Uploads {
			fmt.Fprintf(&b, uploadLineFormat, strings.Join(u.FileNames, attachmentNameSeparator), u.AuthorID)
		}
	}
	return b.String()
}

type Aggregator struct {
	reader  ChannelReader
	areas   []config.Area
	loc     *time.Location
	now     func() time.Time
	metrics *metrics.Metrics
}

func NewAggregator(reader ChannelReader, areas []config.Area, loc *time.Location, m *metrics.Metrics) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{
		reader:  reader,
		areas:   areas,
		loc:     loc,
		now:     time.Now,
		metrics: m,
	}
}

// Collect scans every area in configured order. An area whose channel cannot
// be resolved or read is logged and left out; it never aborts the others.
func (a *Aggregator) Collect(ctx context.Context) Summary {
	now := a.now().In(a.loc)
	since := StartOfDay(now, a.loc)
	out := Summary{GeneratedAt: now, Location: a.loc}

	for _, area := range a.areas {
		if err := ctx.Err(); err != nil {
			slog.Warn("summary collection interrupted", "error", err, "area", area.Name)
			break
		}
		uploads, err := a.collectArea(area, since)
		if err != nil {
			slog.Error("failed to read area channel", "error", err, "area", area.Name, "channel_id", area.ChannelID)
			a.metrics.RecordAreaFailure(area.Name)
			continue
		}
		if len(uploads) == 0 {
			continue
		}
		out.Sections = append(out.Sections, Section{Area: area.Name, Uploads: uploads})
	}
	slog.Info("summary collected", "since", since, "sections", len(out.Sections))
	return out
}

func (a *Aggregator) collectArea(area config.Area, since time.Time) ([]Upload, error) {
	ch, err := a.reader.ResolveChannel(area.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("resolve channel: %w", err)
	}
	if ch == nil {
		return nil, fmt.Errorf("channel %s not found", area.ChannelID)
	}
	msgs, err := a.reader.FetchRecentMessages(area.ChannelID, FetchLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch messages: %w", err)
	}
	return uploadsSince(msgs, since), nil
}

func uploadsSince(msgs []discord.Message, since time.Time) []Upload {
	qualifying := lo.Filter(msgs, func(m discord.Message, _ int) bool {
		return !m.Timestamp.Before(since) && len(m.Attachments) > 0
	})
	return lo.Map(qualifying, func(m discord.Message, _ int) Upload {
		return Upload{
			AuthorID: m.AuthorID,
			FileNames: lo.Map(m.Attachments, func(att discord.Attachment, _ int) string {
				return att.Filename
			}),
		}
	})
}

// StartOfDay returns local midnight of t's calendar date in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
