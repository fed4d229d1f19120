package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/helioscope/heliobot/internal/domain"
	"github.com/helioscope/heliobot/internal/service"
)

type ctxKey string

const sessionKey ctxKey = "session"

// GetSession extracts the chat session from context.
func GetSession(ctx context.Context) *domain.ChatSession {
	s, ok := ctx.Value(sessionKey).(*domain.ChatSession)
	if !ok {
		return nil
	}
	return s
}

// SessionLoader returns middleware that loads (or seeds) the in-memory chat
// session for the update's chat and stores it in the context.
func SessionLoader(chatService *service.ChatService) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var chatID int64
			if update.Message != nil {
				chatID = update.Message.Chat.ID
			} else if update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil {
				chatID = update.CallbackQuery.Message.Message.Chat.ID
			}

			if chatID != 0 {
				sess := chatService.FindOrCreate(chatID)
				ctx = context.WithValue(ctx, sessionKey, sess)
			}

			next(ctx, b, update)
		}
	}
}
