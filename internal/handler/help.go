package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const helpText = `☀️ *Heliobot commands*

/start — restart the conversation
/mode — switch between web search and model answers
/conditions — live K-index and solar wind readouts
/alerts — latest space weather headlines
/end — clear the current session
/help — this message

Or just ask me about solar flares, CMEs, the solar wind, geomagnetic storms, aurora or the Aditya-L1 mission.`

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      helpText,
		ParseMode: models.ParseModeMarkdownV1,
	})
}
