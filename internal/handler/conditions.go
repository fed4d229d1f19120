package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const headlineLimit = 5

// kpDescription maps a planetary K-index value to a storm level per the NOAA
// G-scale.
func kpDescription(kp float64) string {
	switch {
	case kp >= 8:
		return "severe storm (G4+)"
	case kp >= 7:
		return "strong storm (G3)"
	case kp >= 6:
		return "moderate storm (G2)"
	case kp >= 5:
		return "minor storm (G1)"
	case kp >= 4:
		return "active"
	default:
		return "quiet"
	}
}

// handleConditions sends the latest sensor readouts.
func (h *Handler) handleConditions(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	cond, err := h.spaceWeather.CurrentConditions(ctx)
	if err != nil {
		slog.Error("fetch conditions", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "📡 Live readouts are unavailable right now. Please try again later.",
		})
		return
	}

	var sb strings.Builder
	sb.WriteString("☀️ Current space weather\n\n")
	fmt.Fprintf(&sb, "Planetary K-index: %.2f (%s)\n", cond.KIndex, kpDescription(cond.KIndex))
	if !cond.KIndexTime.IsZero() {
		fmt.Fprintf(&sb, "Measured: %s UTC\n", cond.KIndexTime.Format("02 Jan 15:04"))
	}
	if cond.WindSpeed > 0 {
		fmt.Fprintf(&sb, "Solar wind speed: %.0f km/s\n", cond.WindSpeed)
	}
	if cond.Bt != 0 {
		fmt.Fprintf(&sb, "IMF Bt: %.1f nT, Bz: %.1f nT\n", cond.Bt, cond.Bz)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}

// handleAlerts sends the latest space weather headlines.
func (h *Handler) handleAlerts(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	headlines, err := h.spaceWeather.Headlines(ctx, headlineLimit)
	if err != nil {
		slog.Error("fetch headlines", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "📡 Headlines are unavailable right now. Please try again later.",
		})
		return
	}
	if len(headlines) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "No current space weather headlines. Quiet Sun!",
		})
		return
	}

	var sb strings.Builder
	sb.WriteString("📰 Space weather headlines\n")
	for i, hl := range headlines {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, hl.Title)
		if hl.Link != "" {
			fmt.Fprintf(&sb, "\n%s", hl.Link)
		}
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}
