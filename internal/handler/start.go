package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// handleStart resets the chat session and sends the greeting. The greeting
// text depends on whether the remote APIs are configured.
func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	sess := h.chatService.Reset(chatID)
	greeting := sess.Messages()[0]

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   greeting.Text,
	})
}
