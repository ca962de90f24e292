package discord

import (
	"context"
	"time"
)

type Attachment struct {
	ID       string
	Filename string
	URL      string
}

type Message struct {
	ID          string
	ChannelID   string
	AuthorID    string
	AuthorIsBot bool
	Content     string
	Timestamp   time.Time
	Attachments []Attachment
}

type Channel struct {
	ID   string
	Name string
}

type EmbedField struct {
	Name  string
	Value string
}

type Embed struct {
	Title  string
	Color  int
	Fields []EmbedField
}

type MessageEvent struct {
	GuildID     string
	ChannelID   string
	MessageID   string
	AuthorID    string
	AuthorIsBot bool
	Content     string
}

type Client interface {
	Connect(ctx context.Context) error
	Close() error
	GetBotUserID() (string, error)
	RegisterMessageCreateHandler(handler func(MessageEvent))
	// ResolveChannel returns nil without error when the channel does not exist.
	ResolveChannel(channelID string) (*Channel, error)
	FetchRecentMessages(channelID string, limit int) ([]Message, error)
	SendChannelMessage(channelID, content string) error
	SendChannelEmbed(channelID string, embed Embed) error
}
