package handler

import (
	"github.com/go-telegram/bot"

	"github.com/helioscope/heliobot/internal/config"
	"github.com/helioscope/heliobot/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot          *bot.Bot
	cfg          *config.Config
	chatService  *service.ChatService
	spaceWeather *service.SpaceWeatherService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot          *bot.Bot
	Cfg          *config.Config
	ChatService  *service.ChatService
	SpaceWeather *service.SpaceWeatherService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:          deps.Bot,
		cfg:          deps.Cfg,
		chatService:  deps.ChatService,
		spaceWeather: deps.SpaceWeather,
	}
}
