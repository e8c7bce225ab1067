package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thefurer/PLdescubierto-chat/internal/models"
)

func TestClassifyPerRule(t *testing.T) {
	tests := []struct {
		text string
		want models.Intent
	}{
		{"quiero un itinerario de 3 días", models.IntentItinerary},
		{"tienen algún plan familiar", models.IntentItinerary},
		{"cuál es la mejor ruta", models.IntentItinerary},
		{"necesito el contacto del hotel", models.IntentContact},
		{"me pasas su teléfono", models.IntentContact},
		{"cuál es su email", models.IntentContact},
		{"busco información general", models.IntentContact},
		{"cuál es la mejor temporada", models.IntentSeasons},
		{"en qué época van las ballenas jorobadas", models.IntentSeasons},
		{"cuando conviene ir", models.IntentSeasons},
		{"qué mes recomiendan", models.IntentSeasons},
		{"qué actividades ofrecen", models.IntentActivities},
		{"hay algún tour a la isla", models.IntentActivities},
		{"qué se puede hacer allá", models.IntentActivities},
		{"quiero ver una ballena", models.IntentActivities},
		{"cómo está el clima", models.IntentWeather},
		{"hace buen tiempo en agosto", models.IntentWeather},
		{"hay mucha lluvia", models.IntentWeather},
		{"a qué temperatura está el mar", models.IntentWeather},
		{"hola, buenos días amigos", models.IntentItinerary}, // "días" matches first
		{"hola qué tal", models.IntentGeneral},
		{"gracias por todo", models.IntentGeneral},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.text), "text %q", tc.text)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.IntentActivities, Classify("QUÉ TOUR RECOMIENDAN"))
	assert.Equal(t, models.IntentWeather, Classify("EL CLIMA"))
}

// Overlaps between keyword sets are resolved by rule order, not by
// specificity: seasons is checked before activities, so a message
// containing both "tour" and "temporada" lands on seasons.
func TestClassifyTieBreaksByRuleOrder(t *testing.T) {
	assert.Equal(t, models.IntentSeasons, Classify("hay tour en temporada alta"))
	assert.Equal(t, models.IntentItinerary, Classify("plan con tour incluido"))
	assert.Equal(t, models.IntentContact, Classify("email con información del clima"))
}

// Classification is total: any string maps to exactly one intent, with
// general as the catch-all.
func TestClassifyIsTotal(t *testing.T) {
	inputs := []string{"", "zzz", "¿?", "1234567890", "lorem ipsum dolor"}
	for _, in := range inputs {
		got := Classify(in)
		assert.NotEmpty(t, got)
		assert.Contains(t, append(Rules(), models.IntentGeneral), got)
	}
}

func TestClassifyActivitiesScenario(t *testing.T) {
	assert.Equal(t, models.IntentActivities, Classify("¿Qué actividades hay en Puerto López?"))
}
