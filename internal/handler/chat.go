package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/helioscope/heliobot/internal/domain"
	"github.com/helioscope/heliobot/internal/middleware"
	tg "github.com/helioscope/heliobot/internal/telegram"
)

// HandleText processes free-text messages: it submits the query to the chat
// session, keeps the typing indicator alive while the resolution is in
// flight, and sends the assistant reply when it settles.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	msg := update.Message
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	sess := middleware.GetSession(ctx)
	if sess == nil {
		return
	}
	chatID := msg.Chat.ID

	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	done := make(chan domain.Message, 1)
	_, err := h.chatService.Submit(ctx, sess, msg.Text, func(reply domain.Message) {
		done <- reply
	})
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyMessage) {
			slog.Error("submit failed", "error", err, "chat_id", chatID)
		}
		return
	}

	reply := <-done
	stopTyping()

	if err := tg.SendLongMessage(ctx, b, chatID, reply.Text); err != nil {
		slog.Error("send reply", "error", err, "chat_id", chatID)
	}
}
