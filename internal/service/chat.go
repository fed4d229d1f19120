package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/helioscope/heliobot/internal/config"
	"github.com/helioscope/heliobot/internal/domain"
)

// Greeting texts for freshly seeded sessions. Which one is used depends on
// whether the remote collaborators are configured.
const (
	greetingConfigured = "Hello! I'm your solar weather assistant. Ask me anything about the Sun, solar flares, CMEs or geomagnetic storms. I'll answer from live data and models where I can. Use /mode to switch between web search and model answers."
	greetingOffline    = "Hello! I'm your solar weather assistant. Remote APIs aren't configured, so I'll answer from my built-in solar knowledge. Ask me about the Sun, solar flares, CMEs, the solar wind or aurora."
)

// resolveErrorText is appended when a resolution fails in a way the fallback
// gate could not absorb.
const resolveErrorText = "Something went wrong while preparing a reply. Please try again."

// ChatService owns the per-chat sessions and drives the submit/resolve cycle.
// Sessions live in memory only and disappear on reset or restart.
type ChatService struct {
	mu       sync.Mutex
	sessions map[int64]*domain.ChatSession
	resolver *Resolver
	cfg      *config.Config
}

func NewChatService(cfg *config.Config, resolver *Resolver) *ChatService {
	return &ChatService{
		sessions: make(map[int64]*domain.ChatSession),
		resolver: resolver,
		cfg:      cfg,
	}
}

// DefaultMode returns the configured startup response mode.
func (s *ChatService) DefaultMode() domain.Mode {
	if s.cfg.DefaultMode == string(domain.ModeWeb) {
		return domain.ModeWeb
	}
	return domain.ModeModel
}

// Greeting returns the seed message for a new session.
func (s *ChatService) Greeting() domain.Message {
	text := greetingOffline
	if s.cfg.IsAPIConfigured() {
		text = greetingConfigured
	}
	return domain.NewAssistantMessage(text, domain.SourceLocal, nil)
}

// FindOrCreate returns the session for a chat, seeding a fresh one on first
// contact.
func (s *ChatService) FindOrCreate(chatID int64) *domain.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess
	}
	sess := domain.NewChatSession(s.Greeting(), s.DefaultMode())
	s.sessions[chatID] = sess
	return sess
}

// Reset drops a chat's session and seeds a fresh one, keeping the previous
// response mode.
func (s *ChatService) Reset(chatID int64) *domain.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	mode := s.DefaultMode()
	if old, ok := s.sessions[chatID]; ok {
		mode = old.Mode()
	}
	sess := domain.NewChatSession(s.Greeting(), mode)
	s.sessions[chatID] = sess
	return sess
}

// Submit appends the user message synchronously, marks the session as typing
// and resolves the reply in the background. Exactly one assistant message is
// appended per submit, whatever happens, and onReply is invoked with it once
// the resolution settles. Input that trims to empty is rejected with
// domain.ErrEmptyMessage and leaves the session untouched.
//
// Concurrent submits are allowed; their replies append in completion order.
func (s *ChatService) Submit(ctx context.Context, sess *domain.ChatSession, text string, onReply func(domain.Message)) (domain.Message, error) {
	query := strings.TrimSpace(text)
	if query == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}

	userMsg := domain.NewUserMessage(text)
	sess.Append(userMsg)

	// The mode is captured now; SetMode during the resolution has no effect
	// on this reply.
	mode := sess.Mode()
	sess.BeginResolution()

	go func() {
		defer sess.EndResolution()
		reply := s.resolveSafely(ctx, query, mode)
		sess.Append(reply)
		if onReply != nil {
			onReply(reply)
		}
	}()

	return userMsg, nil
}

// resolveSafely converts panics inside the resolver into the fixed error
// reply so every submit still settles and the session returns to idle.
func (s *ChatService) resolveSafely(ctx context.Context, query string, mode domain.Mode) (msg domain.Message) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("resolver panic", "panic", r, "mode", mode)
			msg = domain.NewAssistantMessage(resolveErrorText, domain.SourceFor(mode), nil)
		}
	}()

	cand := s.resolver.Resolve(ctx, query, mode)
	return domain.NewAssistantMessage(cand.Text, cand.Source, cand.SearchResults)
}
