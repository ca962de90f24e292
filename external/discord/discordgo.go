package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"
	discordpkg "github.com/foxseedlab/practicasbot/internal/discord"
)

// Discord rejects message fetches above this page size.
const maxMessagesPerRequest = 100

type Client struct {
	session   *discordgo.Session
	token     string
	botUserID string
}

func NewClient(token string) discordpkg.Client {
	return &Client{
		token: token,
	}
}

func (c *Client) Connect(ctx context.Context) error {
	_ = ctx
	s, err := discordgo.New("Bot " + c.token)
	if err != nil {
		return err
	}
	c.session = s
	s.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent)
	if err := s.Open(); err != nil {
		return err
	}
	userID, err := c.GetBotUserID()
	if err != nil {
		return err
	}
	c.botUserID = userID
	return nil
}

func (c *Client) Close() error {
	if c.session != nil {
		return c.session.Close()
	}
	return nil
}

func (c *Client) GetBotUserID() (string, error) {
	if c.botUserID != "" {
		return c.botUserID, nil
	}
	if c.session == nil {
		return "", fmt.Errorf("discord session is not initialized")
	}
	if c.session.State != nil && c.session.State.User != nil && c.session.State.User.ID != "" {
		c.botUserID = c.session.State.User.ID
		return c.botUserID, nil
	}
	u, err := c.session.User("@me")
	if err != nil {
		return "", err
	}
	c.botUserID = u.ID
	return c.botUserID, nil
}

func (c *Client) RegisterMessageCreateHandler(handler func(discordpkg.MessageEvent)) {
	c.session.AddHandler(func(s *discordgo.Session, mc *discordgo.MessageCreate) {
		if mc == nil || mc.Message == nil || mc.Author == nil {
			return
		}
		slog.Debug("message received", "guild_id", mc.GuildID, "channel_id", mc.ChannelID, "message_id", mc.ID, "user_id", mc.Author.ID)
		handler(discordpkg.MessageEvent{
			GuildID:     mc.GuildID,
			ChannelID:   mc.ChannelID,
			MessageID:   mc.ID,
			AuthorID:    mc.Author.ID,
			AuthorIsBot: mc.Author.Bot,
			Content:     mc.Content,
		})
	})
}

func (c *Client) ResolveChannel(channelID string) (*discordpkg.Channel, error) {
	if c.session == nil {
		return nil, fmt.Errorf("discord session is not initialized")
	}
	if c.session.State != nil {
		channel, err := c.session.State.Channel(channelID)
		if err == nil && channel != nil {
			return &discordpkg.Channel{ID: channel.ID, Name: channel.Name}, nil
		}
	}

	// State only knows channels of guilds received over the gateway.
	channel, err := c.session.Channel(channelID)
	if err != nil {
		if isRESTNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if channel == nil {
		return nil, nil
	}
	return &discordpkg.Channel{ID: channel.ID, Name: channel.Name}, nil
}

func (c *Client) FetchRecentMessages(channelID string, limit int) ([]discordpkg.Message, error) {
	if c.session == nil {
		return nil, fmt.Errorf("discord session is not initialized")
	}
	if limit <= 0 || limit > maxMessagesPerRequest {
		limit = maxMessagesPerRequest
	}
	msgs, err := c.session.ChannelMessages(channelID, limit, "", "", "")
	if err != nil {
		return nil, err
	}
	out := make([]discordpkg.Message, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		out = append(out, toMessage(m))
	}
	return out, nil
}

func toMessage(m *discordgo.Message) discordpkg.Message {
	msg := discordpkg.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
		msg.AuthorIsBot = m.Author.Bot
	}
	for _, a := range m.Attachments {
		if a == nil {
			continue
		}
		msg.Attachments = append(msg.Attachments, discordpkg.Attachment{
			ID:       a.ID,
			Filename: a.Filename,
			URL:      a.URL,
		})
	}
	return msg
}

func (c *Client) SendChannelMessage(channelID, content string) error {
	_, err := c.session.ChannelMessageSend(channelID, content)
	return err
}

func (c *Client) SendChannelEmbed(channelID string, embed discordpkg.Embed) error {
	fields := make([]*discordgo.MessageEmbedField, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		fields = append(fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value})
	}
	_, err := c.session.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
		Title:  embed.Title,
		Color:  embed.Color,
		Fields: fields,
	})
	return err
}

func isRESTNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Response == nil {
		return false
	}
	return restErr.Response.StatusCode == http.StatusNotFound
}
