package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thefurer/PLdescubierto-chat/internal/llm"
	"github.com/thefurer/PLdescubierto-chat/internal/models"
	"github.com/thefurer/PLdescubierto-chat/internal/prompts"
)

func TestRespondForwardsModelReply(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Fn = func(ctx context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "quiero ver ballenas")
		return "Te recomiendo el tour de avistamiento.", nil
	}

	r := NewResponder(mock)
	reply := r.Respond(context.Background(), models.ClassifiedRequest{
		SanitizedText: "quiero ver ballenas",
		Intent:        models.IntentActivities,
	})

	assert.Equal(t, "Te recomiendo el tour de avistamiento.", reply)
	assert.Equal(t, 1, mock.Calls)
}

// The contact intent must stay available with no network dependency,
// even when the model client is forced to fail.
func TestRespondContactNeverCallsModel(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Fn = func(ctx context.Context, prompt string) (string, error) {
		return "", llm.ErrService
	}

	r := NewResponder(mock)
	reply := r.Respond(context.Background(), models.ClassifiedRequest{
		SanitizedText: "cómo los contacto",
		Intent:        models.IntentContact,
	})

	assert.Equal(t, prompts.ContactReply, reply)
	assert.Zero(t, mock.Calls)
}

func TestRespondModelFailureReturnsIntentFallback(t *testing.T) {
	for _, modelErr := range []error{llm.ErrRateLimited, llm.ErrAuthFailure, llm.ErrService} {
		mock := llm.NewMockProvider()
		mock.Fn = func(ctx context.Context, prompt string) (string, error) {
			return "", modelErr
		}

		r := NewResponder(mock)
		reply := r.Respond(context.Background(), models.ClassifiedRequest{
			SanitizedText: "qué actividades hay",
			Intent:        models.IntentActivities,
		})

		require.Equal(t, prompts.Fallback(models.IntentActivities), reply)
		// Degraded service is communicated in-band with direct contact
		// channels, never as a raw error string.
		assert.Contains(t, reply, "+593 99 240 7315")
	}
}

func TestRespondFallbacksArePerIntent(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Fn = func(ctx context.Context, prompt string) (string, error) {
		return "", llm.ErrService
	}
	r := NewResponder(mock)

	seen := map[string]bool{}
	for _, in := range []models.Intent{
		models.IntentItinerary,
		models.IntentSeasons,
		models.IntentActivities,
		models.IntentWeather,
		models.IntentGeneral,
	} {
		reply := r.Respond(context.Background(), models.ClassifiedRequest{
			SanitizedText: "x",
			Intent:        in,
		})
		assert.False(t, seen[reply], "fallback for %s duplicates another intent", in)
		seen[reply] = true
	}
}
