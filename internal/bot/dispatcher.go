package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/foxseedlab/practicasbot/internal/discord"
	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/foxseedlab/practicasbot/internal/repository"
	"github.com/foxseedlab/practicasbot/internal/summary"
)

// Messenger is the part of the Discord client the dispatcher talks to.
type Messenger interface {
	ResolveChannel(channelID string) (*discord.Channel, error)
	SendChannelMessage(channelID, content string) error
	SendChannelEmbed(channelID string, embed discord.Embed) error
}

type SummaryCollector interface {
	Collect(ctx context.Context) summary.Summary
}

type commandRequest struct {
	ctx       context.Context
	channelID string
	authorID  string
	args      []string
}

type commandHandler func(req commandRequest) error

type Dispatcher struct {
	messenger              Messenger
	meetings               repository.MeetingRepository
	collector              SummaryCollector
	metrics                *metrics.Metrics
	announcementsChannelID string
	commands               map[string]commandHandler
}

func NewDispatcher(messenger Messenger, meetings repository.MeetingRepository, collector SummaryCollector, m *metrics.Metrics, announcementsChannelID string) *Dispatcher {
	d := &Dispatcher{
		messenger:              messenger,
		meetings:               meetings,
		collector:              collector,
		metrics:                m,
		announcementsChannelID: announcementsChannelID,
	}
	d.commands = map[string]commandHandler{
		commandHelp:       d.replyStatic(messageHelp),
		commandDay:        d.replyStatic(messageDay),
		commandWork:       d.replyStatic(messageWork),
		commandMeetings:   d.handleListMeetings,
		commandAddMeeting: d.handleAddMeeting,
		commandSummary:    d.handleSummary,
	}
	return d
}

func (d *Dispatcher) HandleMessage(event discord.MessageEvent) {
	if event.AuthorIsBot {
		return
	}
	name, args, ok := parseCommand(event.Content)
	if !ok {
		return
	}
	handler, ok := d.commands[name]
	if !ok {
		return
	}
	slog.Info("command received", "command", name, "channel_id", event.ChannelID, "user_id", event.AuthorID, "args", len(args))
	d.metrics.RecordCommand(name)
	err := handler(commandRequest{
		ctx:       context.Background(),
		channelID: event.ChannelID,
		authorID:  event.AuthorID,
		args:      args,
	})
	if err != nil {
		slog.Error("failed to reply to command", "error", err, "command", name, "channel_id", event.ChannelID)
	}
}

// parseCommand splits "!name arg1 arg2" into a lower-cased name and its
// arguments. ok is false when content does not start with the prefix.
func parseCommand(content string) (string, []string, bool) {
	if !strings.HasPrefix(content, commandPrefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, commandPrefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

func (d *Dispatcher) replyStatic(content string) commandHandler {
	return func(req commandRequest) error {
		return d.messenger.SendChannelMessage(req.channelID, content)
	}
}

func (d *Dispatcher) handleListMeetings(req commandRequest) error {
	list, err := d.meetings.ListMeetings(req.ctx)
	if err != nil {
		slog.Error("failed to list meetings", "error", err)
		return d.messenger.SendChannelMessage(req.channelID, messageMeetingsUnavailable)
	}
	if len(list) == 0 {
		return d.messenger.SendChannelMessage(req.channelID, messageNoMeetings)
	}
	return d.messenger.SendChannelEmbed(req.channelID, meetingsEmbed(list))
}

func meetingsEmbed(list []repository.Meeting) discord.Embed {
	fields := make([]discord.EmbedField, 0, len(list))
	for i, m := range list {
		fields = append(fields, discord.EmbedField{
			Name:  fmt.Sprintf(meetingFieldNameFormat, i+1),
			Value: fmt.Sprintf(meetingFieldValueFormat, m.Day, m.Place),
		})
	}
	return discord.Embed{
		Title:  meetingsEmbedTitle,
		Color:  meetingsEmbedColor,
		Fields: fields,
	}
}

func (d *Dispatcher) handleAddMeeting(req commandRequest) error {
	if len(req.args) == 0 {
		return d.messenger.SendChannelMessage(req.channelID, messageAddMeetingMissingArgs)
	}
	day := req.args[0]
	place := strings.Join(req.args[1:], " ")
	if day == "" || place == "" {
		return d.messenger.SendChannelMessage(req.channelID, messageAddMeetingBadFormat)
	}
	if err := d.meetings.AddMeeting(req.ctx, repository.Meeting{Day: day, Place: place}); err != nil {
		slog.Error("failed to add meeting", "error", err, "user_id", req.authorID)
		return d.messenger.SendChannelMessage(req.channelID, messageAddMeetingFailed)
	}
	slog.Info("meeting added", "day", day, "place", place, "user_id", req.authorID)
	return d.messenger.SendChannelMessage(req.channelID, meetingAddedMessage(day, place))
}

// handleSummary checks the announcements channel first but replies in the
// channel the command came from.
func (d *Dispatcher) handleSummary(req commandRequest) error {
	ch, err := d.messenger.ResolveChannel(d.announcementsChannelID)
	if err != nil || ch == nil {
		slog.Warn("announcements channel unavailable", "error", err, "channel_id", d.announcementsChannelID)
		return d.messenger.SendChannelMessage(req.channelID, messageAnnouncementsNotFound)
	}
	d.metrics.RecordSummaryRun(metrics.TriggerCommand)
	report := d.collector.Collect(req.ctx).Text()
	return d.messenger.SendChannelMessage(req.channelID, report)
}
