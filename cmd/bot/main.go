package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	configloader "github.com/foxseedlab/practicasbot/external/config"
	"github.com/foxseedlab/practicasbot/external/discord"
	"github.com/foxseedlab/practicasbot/external/health"
	repositoryimpl "github.com/foxseedlab/practicasbot/external/repository"
	webhookimpl "github.com/foxseedlab/practicasbot/external/webhook"
	"github.com/foxseedlab/practicasbot/internal/bot"
	"github.com/foxseedlab/practicasbot/internal/config"
	discordpkg "github.com/foxseedlab/practicasbot/internal/discord"
	"github.com/foxseedlab/practicasbot/internal/metrics"
	"github.com/foxseedlab/practicasbot/internal/scheduler"
	"github.com/foxseedlab/practicasbot/internal/summary"
	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"
)

const discordConnectTimeout = 20 * time.Second

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "areas", len(cfg.Areas), "summary_time", cfg.SummaryTime, "summary_timezone", cfg.SummaryTimezone)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, injector); err != nil {
		slog.Error("bot stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	metrics.RegisterDI(injector)
	repositoryimpl.RegisterDI(injector)
	discord.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	health.RegisterDI(injector)
	summary.RegisterDI(injector)
	bot.RegisterDI(injector)
	scheduler.RegisterDI(injector)

	return injector
}

func run(ctx context.Context, injector do.Injector) error {
	liveness := do.MustInvoke[*health.Server](injector)
	metricsServer := do.MustInvoke[*health.MetricsServer](injector)

	g, gctx := errgroup.WithContext(ctx)

	// The liveness endpoint comes up before the gateway login so uptime
	// monitors see the process even while Discord is unreachable.
	g.Go(func() error { return liveness.Run(gctx) })
	if metricsServer.Server != nil {
		g.Go(func() error { return metricsServer.Run(gctx) })
	}

	dc, err := do.Invoke[discordpkg.Client](injector)
	if err != nil {
		return err
	}
	dispatcher, err := do.Invoke[*bot.Dispatcher](injector)
	if err != nil {
		return err
	}
	sched, err := do.Invoke[*scheduler.Scheduler](injector)
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(gctx, discordConnectTimeout)
	defer cancel()

	slog.Info("startup: connecting to discord gateway")
	if err := dc.Connect(connectCtx); err != nil {
		return err
	}
	defer func() {
		if err := dc.Close(); err != nil {
			slog.Error("discord close failed", "error", err)
		}
	}()
	botUserID, err := dc.GetBotUserID()
	if err != nil {
		return err
	}
	slog.Info("startup: discord connected", "bot_user_id", botUserID)

	dc.RegisterMessageCreateHandler(dispatcher.HandleMessage)
	slog.Info("discord handlers registered", "prefix", "!")

	g.Go(func() error { return sched.Run(gctx) })

	<-gctx.Done()
	slog.Info("shutting down")
	return g.Wait()
}
