package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// handleEnd drops the current session. The next message starts a fresh one
// with only the greeting in its log.
func (h *Handler) handleEnd(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.chatService.Reset(chatID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🧹 Session cleared. Ask me something new about the Sun!",
	})
}
