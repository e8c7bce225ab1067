// Package intent maps sanitized user text to one of six intent
// categories using ordered keyword rules.
package intent

import (
	"strings"

	"github.com/thefurer/PLdescubierto-chat/internal/models"
)

// rule pairs an intent with the keywords that select it. Rules are
// evaluated in order and the first match wins, so overlaps between
// keyword sets are resolved purely by position in the list.
type rule struct {
	intent   models.Intent
	keywords []string
}

var rules = []rule{
	{models.IntentItinerary, []string{"itinerario", "plan", "ruta", "días"}},
	{models.IntentContact, []string{"contacto", "teléfono", "email", "información"}},
	{models.IntentSeasons, []string{"temporada", "época", "cuando", "mes"}},
	{models.IntentActivities, []string{"actividad", "tour", "hacer", "ballena"}},
	{models.IntentWeather, []string{"clima", "tiempo", "lluvia", "temperatura"}},
}

// Classify assigns an intent to sanitized text. Matching is
// case-insensitive substring containment. Classification is total:
// when no rule matches the result is IntentGeneral, never "no match".
func Classify(text string) models.Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.intent
			}
		}
	}
	return models.IntentGeneral
}

// Rules returns the ordered intent labels, for exhaustive per-rule
// coverage in tests.
func Rules() []models.Intent {
	out := make([]models.Intent, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.intent)
	}
	return out
}
