package middleware

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/time/rate"

	"github.com/helioscope/heliobot/internal/config"
)

// chatLimiters hands out one token-bucket limiter per chat.
type chatLimiters struct {
	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
}

func (c *chatLimiters) get(chatID int64) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	lim, ok := c.limiters[chatID]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(config.RateLimitPerMinute)/60, config.RateLimitBurst)
		c.limiters[chatID] = lim
	}
	return lim
}

// RateLimit returns middleware that enforces a per-chat message rate.
// Callbacks and other updates pass through untouched.
func RateLimit() bot.Middleware {
	limiters := &chatLimiters{limiters: make(map[int64]*rate.Limiter)}

	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			if !limiters.get(chatID).Allow() {
				slog.Debug("rate limited", "chat_id", chatID)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many messages. Give me a moment.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
