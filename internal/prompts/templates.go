// Package prompts holds the domain-context templates used by the intent
// handlers, the static contact reply, and the canned fallbacks returned
// when the model service is unavailable.
package prompts

import (
	"fmt"

	"github.com/thefurer/PLdescubierto-chat/internal/models"
)

const itineraryContext = `Eres el asistente virtual de Puerto López Descubierto, el portal turístico de Puerto López, Ecuador.
Ayudas a los visitantes a armar itinerarios realistas.

Datos del destino:
- Puerto López está en la costa de Manabí, dentro del Parque Nacional Machalilla.
- Imperdibles: Isla de la Plata, playa de Los Frailes, comuna Agua Blanca, avistamiento de ballenas jorobadas.
- Un itinerario típico cubre de 2 a 4 días; los tours a Isla de la Plata toman un día completo.
- Responde en el idioma del usuario, en tono cercano y concreto, máximo 4 párrafos cortos.

Mensaje del visitante:
%s`

const seasonsContext = `Eres el asistente virtual de Puerto López Descubierto, el portal turístico de Puerto López, Ecuador.
Orientas sobre temporadas y fechas para visitar.

Datos de temporadas:
- Temporada de ballenas jorobadas: finales de junio a principios de octubre.
- Temporada seca: junio a noviembre (cielos nublados, menos lluvia).
- Temporada cálida y lluviosa: diciembre a mayo (mar más cálido, días soleados con lluvias cortas).
- Feriados de Ecuador y vacaciones escolares de la Sierra elevan la ocupación.
- Responde en el idioma del usuario, breve y directo.

Mensaje del visitante:
%s`

const activitiesContext = `Eres el asistente virtual de Puerto López Descubierto, el portal turístico de Puerto López, Ecuador.
Recomiendas actividades y tours.

Catálogo de actividades:
- Avistamiento de ballenas jorobadas (junio a octubre, salidas en bote desde el malecón).
- Tour a Isla de la Plata: snorkel, piqueros de patas azules, fragatas.
- Playa de Los Frailes y senderos del Parque Nacional Machalilla.
- Comuna Agua Blanca: museo arqueológico y laguna de azufre.
- Surf en Las Tunas y Ayampe, paseos a caballo, gastronomía en el malecón.
- Responde en el idioma del usuario, sugiere 2 o 3 opciones concretas.

Mensaje del visitante:
%s`

const weatherContext = `Eres el asistente virtual de Puerto López Descubierto, el portal turístico de Puerto López, Ecuador.
Respondes sobre clima y condiciones.

Notas de clima:
- Clima tropical seco; temperatura media entre 22 y 28 °C todo el año.
- De junio a noviembre: garúa ocasional, cielos grises por la mañana, mar algo frío.
- De diciembre a mayo: más sol y calor, lluvias fuertes pero cortas.
- El mar suele estar más agitado en temporada de ballenas.
- Responde en el idioma del usuario, breve y práctico.

Mensaje del visitante:
%s`

const generalContext = `Eres el asistente virtual de Puerto López Descubierto, el portal turístico de Puerto López, Ecuador.
Respondes preguntas generales de visitantes sobre el destino: cómo llegar, dónde hospedarse, qué comer, seguridad y recomendaciones.
Si no sabes algo, dilo con honestidad y sugiere escribir a los canales de contacto del sitio.
Responde en el idioma del usuario, en tono cercano, máximo 4 párrafos cortos.

Mensaje del visitante:
%s`

// ContactReply is returned for the contact intent without touching the
// model, so contact details stay available even during an outage.
const ContactReply = `¡Con gusto! Puedes comunicarte con el equipo de Puerto López Descubierto por estos canales:

📧 Email: info@pldescubierto.com
📱 WhatsApp: +593 99 240 7315
🕘 Atención: lunes a domingo, 08h00 a 20h00 (GMT-5)

También puedes escribirnos por aquí y te ayudamos con tu visita.`

// CouldNotProcess is the one place where raw text substitutes for an
// error: a 2xx model response without the expected payload shape.
const CouldNotProcess = "No pude procesar tu mensaje en este momento. ¿Puedes intentarlo de nuevo con otras palabras?"

// Build composes the domain-context prompt for an intent. The contact
// intent never reaches the model, so it has no template here.
func Build(intent models.Intent, sanitizedText string) string {
	switch intent {
	case models.IntentItinerary:
		return fmt.Sprintf(itineraryContext, sanitizedText)
	case models.IntentSeasons:
		return fmt.Sprintf(seasonsContext, sanitizedText)
	case models.IntentActivities:
		return fmt.Sprintf(activitiesContext, sanitizedText)
	case models.IntentWeather:
		return fmt.Sprintf(weatherContext, sanitizedText)
	default:
		return fmt.Sprintf(generalContext, sanitizedText)
	}
}

var fallbacks = map[models.Intent]string{
	models.IntentItinerary:  "Ahora mismo no puedo armar tu itinerario automáticamente. Escríbenos al WhatsApp +593 99 240 7315 o a info@pldescubierto.com y te ayudamos a planificar tu visita a Puerto López.",
	models.IntentSeasons:    "No puedo consultar la información de temporadas en este momento. La temporada de ballenas va de finales de junio a octubre. Para más detalles escríbenos al WhatsApp +593 99 240 7315.",
	models.IntentActivities: "No puedo recomendarte actividades automáticamente ahora. Los clásicos son el avistamiento de ballenas, Isla de la Plata y Los Frailes. Consúltanos al WhatsApp +593 99 240 7315 o info@pldescubierto.com.",
	models.IntentWeather:    "No puedo consultar el clima en este momento. Puerto López tiene entre 22 y 28 °C todo el año. Si necesitas más detalle, escríbenos al WhatsApp +593 99 240 7315.",
	models.IntentGeneral:    "Tengo problemas para responder en este momento. Escríbenos al WhatsApp +593 99 240 7315 o a info@pldescubierto.com y te atendemos enseguida.",
}

// Fallback returns the canned reply for an intent when the model call
// fails. The contact intent falls through to ContactReply.
func Fallback(intent models.Intent) string {
	if intent == models.IntentContact {
		return ContactReply
	}
	if msg, ok := fallbacks[intent]; ok {
		return msg
	}
	return fallbacks[models.IntentGeneral]
}
