package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which engine produced an assistant message.
type Source string

const (
	SourceWeb   Source = "web"
	SourceModel Source = "model"
	SourceLocal Source = "local_llm"
)

// Mode selects how assistant replies are resolved: live web search or the
// hosted model with the local responder as fallback.
type Mode string

const (
	ModeWeb   Mode = "web"
	ModeModel Mode = "model"
)

// SourceFor returns the source an assistant message would carry when a
// resolution in the given mode fails before producing a candidate.
func SourceFor(mode Mode) Source {
	if mode == ModeWeb {
		return SourceWeb
	}
	return SourceModel
}

// SearchResult is a single web search hit embedded in an assistant message.
// It is owned by that message and never shared.
type SearchResult struct {
	Title       string
	Snippet     string
	Link        string
	ImageURL    string
	ImageWidth  int
	ImageHeight int
}

// Message is one entry in a chat session. Messages are immutable once
// appended and are dropped only when the whole session is reset.
type Message struct {
	ID            string
	Text          string
	IsUser        bool
	Timestamp     time.Time
	Source        Source // empty for user messages
	SearchResults []SearchResult
}

// NewUserMessage creates a message authored by the user.
func NewUserMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    true,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates a reply message with its producing source and
// any web search results that back it.
func NewAssistantMessage(text string, source Source, results []SearchResult) Message {
	return Message{
		ID:            uuid.NewString(),
		Text:          text,
		Timestamp:     time.Now(),
		Source:        source,
		SearchResults: results,
	}
}

// ResponseCandidate is the transient outcome of one resolution step before it
// becomes a Message. Confidence is a constant per source and is used only to
// decide whether a local answer should be escalated to the remote model.
type ResponseCandidate struct {
	Text          string
	Confidence    float64
	Source        Source
	SearchResults []SearchResult
}
