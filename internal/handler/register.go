package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mode", bot.MatchTypePrefix, h.handleMode)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/conditions", bot.MatchTypePrefix, h.handleConditions)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/alerts", bot.MatchTypePrefix, h.handleAlerts)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/end", bot.MatchTypePrefix, h.handleEnd)

	// Mode callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "mode_", bot.MatchTypePrefix, h.handleModeSelect)
}

// answerCallback acknowledges a callback query so the client stops showing a
// progress indicator.
func answerCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
		})
	}
}
