package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/helioscope/heliobot/internal/domain"
	"github.com/helioscope/heliobot/internal/middleware"
	tg "github.com/helioscope/heliobot/internal/telegram"
)

func modeLabel(mode domain.Mode) string {
	if mode == domain.ModeWeb {
		return "🌐 Web search"
	}
	return "🤖 Model"
}

// handleMode shows the current response mode with buttons to switch it.
func (h *Handler) handleMode(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	sess := middleware.GetSession(ctx)
	if sess == nil {
		return
	}

	keyboard := tg.InlineKeyboard(
		tg.ButtonRow(
			tg.InlineButton("🌐 Web search", "mode_web"),
			tg.InlineButton("🤖 Model", "mode_model"),
		),
	)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        fmt.Sprintf("Current response mode: %s\n\nWeb search looks up live results; model answers use the hosted model with built-in responses as fallback.", modeLabel(sess.Mode())),
		ReplyMarkup: keyboard,
	})
}

// handleModeSelect applies a mode button press. In-flight resolutions keep
// the mode they were submitted with.
func (h *Handler) handleModeSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	answerCallback(ctx, b, update)
	if update.CallbackQuery == nil || update.CallbackQuery.Message.Message == nil {
		return
	}
	sess := middleware.GetSession(ctx)
	if sess == nil {
		return
	}

	mode := domain.ModeModel
	if strings.TrimPrefix(update.CallbackQuery.Data, "mode_") == "web" {
		mode = domain.ModeWeb
	}
	sess.SetMode(mode)

	msg := update.CallbackQuery.Message.Message
	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      fmt.Sprintf("Response mode set to %s.", modeLabel(mode)),
	})
}
