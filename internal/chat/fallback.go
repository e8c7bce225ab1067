package chat

// fallbackState captures how degraded the connection looks from the
// client's side, driven by the consecutive-failure count. Keeping it a
// separate state machine makes the 2-vs-3 threshold independently
// testable.
type fallbackState int

const (
	stateStable fallbackState = iota
	stateDegraded
	stateEscalated
)

// escalationThreshold is the consecutive-failure count at which the
// fallback wording switches from "reconnecting" to "service likely
// offline". The switch happens on the 3rd failure, not the 2nd or 4th.
const escalationThreshold = 3

func stateForFailures(consecutive int) fallbackState {
	switch {
	case consecutive <= 0:
		return stateStable
	case consecutive < escalationThreshold:
		return stateDegraded
	default:
		return stateEscalated
	}
}

const (
	degradedReply = "Parece que hay un problema de conexión. Estoy intentando reconectarme; vuelve a enviar tu mensaje en unos segundos."

	escalatedReply = "El asistente parece estar fuera de línea por el momento. Mientras tanto puedes escribirnos directamente al WhatsApp +593 99 240 7315 o a info@pldescubierto.com y te atendemos enseguida."
)

// fallbackReply returns the assistant-bubble text appended after a
// failed round-trip.
func fallbackReply(state fallbackState) string {
	if state == stateEscalated {
		return escalatedReply
	}
	return degradedReply
}

const (
	noticeTimeout = "La respuesta tardó demasiado. Inténtalo de nuevo."
	noticeNetwork = "No se pudo contactar al asistente."
)

// failureNotice is the transient local notification paired with a
// failed send; timeouts get their own wording.
func failureNotice(timedOut bool) string {
	if timedOut {
		return noticeTimeout
	}
	return noticeNetwork
}
