package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/helioscope/heliobot/internal/config"
	"github.com/helioscope/heliobot/internal/handler"
	"github.com/helioscope/heliobot/internal/middleware"
	"github.com/helioscope/heliobot/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if !cfg.IsAPIConfigured() {
		slog.Warn("remote APIs not configured, running with local responses only",
			"search", cfg.IsSearchConfigured(),
			"model", cfg.IsModelConfigured(),
		)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	responder := service.NewResponder()
	searchService := service.NewSearchService(cfg)
	modelService := service.NewModelService(cfg)
	resolver := service.NewResolver(responder, searchService, modelService)
	chatService := service.NewChatService(cfg, resolver)
	spaceWeather := service.NewSpaceWeatherService(cfg)

	// Handler pointer for use in the default handler closure
	var h *handler.Handler

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.RateLimit(),
			middleware.SessionLoader(chatService),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil || update.Message == nil {
				return
			}
			if strings.HasPrefix(update.Message.Text, "/") {
				return
			}
			h.HandleText(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.DropPendingUpdates {
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			slog.Warn("failed to drop pending updates", "error", err)
		}
	}

	// Initialize handler and register commands
	h = handler.New(handler.Deps{
		Bot:          b,
		Cfg:          cfg,
		ChatService:  chatService,
		SpaceWeather: spaceWeather,
	})
	h.Register()

	slog.Info("starting bot", "default_mode", cfg.DefaultMode)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}
