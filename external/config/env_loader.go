package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/practicasbot/internal/config"
	"github.com/joho/godotenv"
)

type envConfig struct {
	Env                    string   `env:"ENV" envDefault:"production"`
	DiscordToken           string   `env:"TOKEN,required"`
	Port                   int      `env:"PORT" envDefault:"3000"`
	MetricsPort            int      `env:"METRICS_PORT" envDefault:"0"`
	AnnouncementsChannelID string   `env:"ANNOUNCEMENTS_CHANNEL_ID" envDefault:"1376878458482724864"`
	AreaChannels           []string `env:"AREA_CHANNELS" envSeparator:"," envDefault:"web:1370373806828421190,comercial:1370373825589547079,3d:1370373867092181003,investigacion:1372890682544357396,proyectos:1370373846401679460"`
	SummaryTime            string   `env:"SUMMARY_TIME" envDefault:"16:30"`
	SummaryTimezone        string   `env:"SUMMARY_TIMEZONE" envDefault:"Atlantic/Canary"`
	SummaryWebhookURL      string   `env:"SUMMARY_WEBHOOK_URL"`
	DatabaseURL            string   `env:"DATABASE_URL"`
	LogFile                string   `env:"LOG_FILE"`
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (*internalconfig.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}
	return LoadFromEnv()
}

func LoadFromEnv() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	areas, err := internalconfig.ParseAreas(raw.AreaChannels)
	if err != nil {
		return nil, fmt.Errorf("AREA_CHANNELS is invalid: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                    raw.Env,
		DiscordToken:           raw.DiscordToken,
		Port:                   raw.Port,
		MetricsPort:            raw.MetricsPort,
		AnnouncementsChannelID: raw.AnnouncementsChannelID,
		Areas:                  areas,
		SummaryTime:            raw.SummaryTime,
		SummaryTimezone:        raw.SummaryTimezone,
		SummaryWebhookURL:      raw.SummaryWebhookURL,
		DatabaseURL:            raw.DatabaseURL,
		LogFile:                raw.LogFile,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
