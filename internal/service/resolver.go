package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/helioscope/heliobot/internal/config"
	"github.com/helioscope/heliobot/internal/domain"
)

// Fixed user-facing strings for degraded paths.
const (
	searchNotConfiguredText = "Web search requires API configuration. Please set up your Google Search API key."
	searchUnavailableText   = "Web search is currently unavailable. Please try again in a moment."
)

// remoteConfidence is the fixed confidence of answers produced by a remote
// collaborator.
const remoteConfidence = 0.9

// Resolver is the fallback gate: it decides whether a local canned answer
// stands or a remote collaborator produces the reply, racing remote calls
// against a fixed timeout. At most one outbound call happens per resolution
// and no retries are attempted.
type Resolver struct {
	responder *Responder
	search    *SearchService
	model     *ModelService
	timeout   time.Duration
}

func NewResolver(responder *Responder, search *SearchService, model *ModelService) *Resolver {
	return &Resolver{
		responder: responder,
		search:    search,
		model:     model,
		timeout:   config.RemoteTimeout,
	}
}

// Resolve turns a query into a response candidate for the given mode. Every
// failure path still yields a usable candidate; nothing here is fatal.
func (r *Resolver) Resolve(ctx context.Context, query string, mode domain.Mode) domain.ResponseCandidate {
	if mode == domain.ModeWeb {
		return r.resolveWeb(ctx, query)
	}
	return r.resolveModel(ctx, query)
}

func (r *Resolver) resolveWeb(ctx context.Context, query string) domain.ResponseCandidate {
	if !r.search.IsConfigured() {
		return domain.ResponseCandidate{
			Text:       searchNotConfiguredText,
			Confidence: remoteConfidence,
			Source:     domain.SourceWeb,
		}
	}

	results, err := r.search.Search(ctx, query)
	if err != nil {
		slog.Warn("web search failed", "error", err)
		return domain.ResponseCandidate{
			Text:       searchUnavailableText,
			Confidence: remoteConfidence,
			Source:     domain.SourceWeb,
		}
	}

	return domain.ResponseCandidate{
		Text:          Summarize(query, results),
		Confidence:    remoteConfidence,
		Source:        domain.SourceWeb,
		SearchResults: results,
	}
}

func (r *Resolver) resolveModel(ctx context.Context, query string) domain.ResponseCandidate {
	// The local candidate is always computed first: it is both the
	// high-confidence short-circuit and the fallback for every remote failure.
	local := r.responder.Respond(query)
	if local.Confidence >= config.ConfidenceThreshold {
		return local
	}
	if !r.model.IsConfigured() {
		return local
	}

	type outcome struct {
		text string
		err  error
	}
	// Buffered so the race loser's late write is discarded, not blocked on.
	settled := make(chan outcome, 1)
	go func() {
		text, err := r.model.Generate(ctx, query)
		settled <- outcome{text, err}
	}()

	select {
	case out := <-settled:
		if out.err != nil || out.text == "" {
			slog.Warn("model generation failed, using local responder", "error", out.err)
			return local
		}
		return domain.ResponseCandidate{
			Text:       out.text,
			Confidence: remoteConfidence,
			Source:     domain.SourceModel,
		}
	case <-time.After(r.timeout):
		// No cancellation is sent; the in-flight call finishes on its own and
		// its result has nowhere to go.
		slog.Warn("model generation timed out", "timeout", r.timeout)
		return local
	case <-ctx.Done():
		return local
	}
}
