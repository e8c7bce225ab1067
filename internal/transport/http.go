// Package transport exposes the support pipeline over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/thefurer/PLdescubierto-chat/internal/chatlog"
	"github.com/thefurer/PLdescubierto-chat/internal/handlers"
	"github.com/thefurer/PLdescubierto-chat/internal/intent"
	"github.com/thefurer/PLdescubierto-chat/internal/models"
	"github.com/thefurer/PLdescubierto-chat/internal/sanitize"
)

// Conversational validation replies. Validation failures are delivered
// in-band with a 200 status so the client never needs a special case
// for "bad request".
const (
	emptyMessageReply   = "Parece que tu mensaje llegó vacío. Escríbeme tu pregunta sobre Puerto López y te ayudo con gusto."
	invalidMessageReply = "No pude leer tu mensaje. Intenta de nuevo usando solo texto, sin código ni símbolos especiales."
)

// Recorder is the slice of chatlog.Logger the handler needs; keeping it
// an interface lets tests observe fire-and-forget writes.
type Recorder interface {
	Record(entry chatlog.Entry)
}

// Server handles chat requests. It is stateless: each request runs
// Received → Validated → Classified → Dispatched → Responded and shares
// nothing with its neighbors.
type Server struct {
	responder *handlers.Responder
	recorder  Recorder
	apiKey    string
}

// NewServer wires the pipeline. recorder may be nil when interaction
// logging is disabled. apiKey, when non-empty, is required on POST via
// the X-Api-Key header.
func NewServer(responder *handlers.Responder, recorder Recorder, apiKey string) *Server {
	return &Server{
		responder: responder,
		recorder:  recorder,
		apiKey:    apiKey,
	}
}

// Router builds the chi router with CORS, request logging, and the
// chat endpoint.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/chat", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(s.requireAPIKey)
		}
		r.Post("/", s.handleChat)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleChat orchestrates one request. Terminal state is always a 200
// response carrying a conversational reply; model and logging failures
// shift into reply content, never into status codes.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, models.ChatResponse{
			Reply: invalidMessageReply,
			Error: "invalid request body",
		})
		return
	}

	// Validated: server-side sanitization, independent of whatever the
	// client already did.
	text, err := sanitize.Clean(req.Message)
	if err != nil {
		reply := invalidMessageReply
		if errors.Is(err, sanitize.ErrEmpty) {
			reply = emptyMessageReply
		}
		writeJSON(w, http.StatusOK, models.ChatResponse{
			Reply: reply,
			Error: err.Error(),
		})
		return
	}

	// Classified: total, always exactly one intent.
	classified := models.ClassifiedRequest{
		SanitizedText: text,
		Intent:        intent.Classify(text),
	}

	slog.Debug("chat request classified",
		"session_id", req.SessionID,
		"intent", string(classified.Intent),
	)

	// Dispatched: the responder converts model failures into canned
	// fallbacks internally.
	reply := s.responder.Respond(r.Context(), classified)

	// Fire-and-forget interaction log; Record never blocks.
	if s.recorder != nil {
		s.recorder.Record(chatlog.Entry{
			SessionID: req.SessionID,
			Message:   text,
			Response:  reply,
			Intent:    string(classified.Intent),
			Timestamp: time.Now(),
		})
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// requireAPIKey enforces the public low-privilege access key. This is
// the transport access contract, not a user-identity check.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != s.apiKey {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid api key"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// cors allows any origin; the chat widget runs on the public site.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Api-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
