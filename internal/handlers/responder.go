// Package handlers dispatches classified requests to intent-specific
// responders backed by the model provider.
package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thefurer/PLdescubierto-chat/internal/llm"
	"github.com/thefurer/PLdescubierto-chat/internal/models"
	"github.com/thefurer/PLdescubierto-chat/internal/prompts"
)

// Responder builds the reply for one classified request.
type Responder struct {
	provider llm.Provider
}

func NewResponder(provider llm.Provider) *Responder {
	return &Responder{provider: provider}
}

// Respond produces a reply for the given intent. The contact intent
// bypasses the model entirely so contact channels stay reachable during
// outages. Every model failure is converted into the per-intent canned
// fallback; Respond never returns an error to its caller.
func (r *Responder) Respond(ctx context.Context, req models.ClassifiedRequest) string {
	if req.Intent == models.IntentContact {
		return prompts.ContactReply
	}

	prompt := prompts.Build(req.Intent, req.SanitizedText)

	reply, err := r.provider.Generate(ctx, prompt)
	if err != nil {
		logModelFailure(ctx, req.Intent, err)
		return prompts.Fallback(req.Intent)
	}
	return reply
}

func logModelFailure(ctx context.Context, intent models.Intent, err error) {
	log := slog.Default().With("intent", string(intent))
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		log.Warn("model rate limited, serving fallback")
	case errors.Is(err, llm.ErrAuthFailure):
		log.Error("model auth failure, serving fallback", "error", err)
	default:
		log.Warn("model call failed, serving fallback", "error", err)
	}
}
