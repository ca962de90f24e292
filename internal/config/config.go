package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Area struct {
	Name      string
	ChannelID string
}

type Config struct {
	Env                    string
	DiscordToken           string
	Port                   int
	MetricsPort            int
	AnnouncementsChannelID string
	Areas                  []Area
	SummaryTime            string
	SummaryTimezone        string
	SummaryWebhookURL      string
	DatabaseURL            string
	LogFile                string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("METRICS_PORT must be between 0 and 65535, got %d", c.MetricsPort)
	}
	if c.MetricsPort != 0 && c.MetricsPort == c.Port {
		return fmt.Errorf("METRICS_PORT must differ from PORT")
	}
	if len(c.Areas) == 0 {
		return fmt.Errorf("AREA_CHANNELS must contain at least one area")
	}
	if dup := lo.FindDuplicatesBy(c.Areas, func(a Area) string { return a.Name }); len(dup) > 0 {
		return fmt.Errorf("AREA_CHANNELS contains duplicate area %q", dup[0].Name)
	}
	if _, _, err := c.SummaryClock(); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.SummaryTimezone); err != nil {
		return fmt.Errorf("SUMMARY_TIMEZONE is invalid: %w", err)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "TOKEN", value: c.DiscordToken},
		{name: "ANNOUNCEMENTS_CHANNEL_ID", value: c.AnnouncementsChannelID},
		{name: "SUMMARY_TIME", value: c.SummaryTime},
		{name: "SUMMARY_TIMEZONE", value: c.SummaryTimezone},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// SummaryClock returns the hour and minute of SummaryTime ("HH:MM").
func (c *Config) SummaryClock() (int, int, error) {
	t, err := time.Parse("15:04", c.SummaryTime)
	if err != nil {
		return 0, 0, fmt.Errorf("SUMMARY_TIME must be HH:MM, got %q", c.SummaryTime)
	}
	return t.Hour(), t.Minute(), nil
}

func (c *Config) SummaryLocation() *time.Location {
	loc, err := time.LoadLocation(c.SummaryTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseAreas turns "name:channel_id" entries into areas, keeping their order.
func ParseAreas(entries []string) ([]Area, error) {
	areas := make([]Area, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, channelID, ok := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		channelID = strings.TrimSpace(channelID)
		if !ok || name == "" || channelID == "" {
			return nil, fmt.Errorf("invalid area entry %q, expected name:channel_id", entry)
		}
		areas = append(areas, Area{Name: name, ChannelID: channelID})
	}
	return areas, nil
}
