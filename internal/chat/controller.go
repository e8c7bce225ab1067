// Package chat owns the client side of the support pipeline: the
// conversation state, the send guard, the cancellation deadline, and
// the retry-driven fallback escalation.
package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thefurer/PLdescubierto-chat/internal/sanitize"
	"github.com/thefurer/PLdescubierto-chat/internal/session"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one bubble in the conversation. Message IDs are unique
// within a session; the list is append-only except for Clear.
type Message struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
}

// Greeting is the single assistant message a fresh or cleared
// conversation starts with.
const Greeting = "¡Hola! Soy el asistente virtual de Puerto López Descubierto. Pregúntame sobre actividades, temporadas, clima o cómo planificar tu visita. 🐋"

// SendTimeout is the cancellation deadline for one round-trip.
const SendTimeout = 30 * time.Second

// ErrBusy is returned while another send is still in flight.
var ErrBusy = errors.New("a message is already in flight")

// SendOutcome describes what one Send did to the conversation.
type SendOutcome struct {
	User      Message
	Assistant Message
	Failed    bool   // a fallback was appended instead of a server reply
	TimedOut  bool   // the failure was the cancellation deadline
	Notice    string // transient local notification, "" when none
}

// Controller drives one conversation. Safe for concurrent use; the TUI
// invokes Send from command goroutines.
type Controller struct {
	client  *APIClient
	sess    session.Session
	timeout time.Duration
	now     func() time.Time

	mu       sync.Mutex
	messages []Message
	failures int
	sending  bool
	epoch    int // bumped by Clear so stale sends cannot append
}

// NewController creates a controller with a fresh session and the
// greeting in place.
func NewController(client *APIClient) *Controller {
	c := &Controller{
		client:  client,
		sess:    session.New(),
		timeout: SendTimeout,
		now:     time.Now,
	}
	c.messages = []Message{c.greetingMessage()}
	return c
}

// Session returns the conversation identifier attached to every
// outbound request.
func (c *Controller) Session() session.Session {
	return c.sess
}

// Messages returns a snapshot of the conversation.
func (c *Controller) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Sending reports whether a round-trip is in flight.
func (c *Controller) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

// ConsecutiveFailures returns the current failure streak.
func (c *Controller) ConsecutiveFailures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failures
}

// Send validates, optimistically appends the user message, performs the
// round-trip under the cancellation deadline, and appends either the
// assistant reply or an escalating fallback. Validation errors
// (sanitize.ErrEmpty, sanitize.ErrNoValidChars) and ErrBusy are the
// only errors returned; in both cases no network call was made and the
// conversation is unchanged.
func (c *Controller) Send(ctx context.Context, raw string) (SendOutcome, error) {
	// Mirror of the server-side sanitization, for immediate feedback.
	text, err := sanitize.Clean(raw)
	if err != nil {
		return SendOutcome{}, err
	}

	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return SendOutcome{}, ErrBusy
	}
	c.sending = true
	epoch := c.epoch

	userMsg := c.newMessage(RoleUser, text)
	c.messages = append(c.messages, userMsg)
	c.mu.Unlock()

	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, sendErr := c.client.Send(sendCtx, text, c.sess.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sending = false

	if epoch != c.epoch {
		// The conversation was cleared mid-flight; drop the result.
		return SendOutcome{User: userMsg}, nil
	}

	if sendErr != nil {
		c.failures++
		timedOut := isTimeout(sendErr)
		assistant := c.newMessage(RoleAssistant, fallbackReply(stateForFailures(c.failures)))
		c.messages = append(c.messages, assistant)
		return SendOutcome{
			User:      userMsg,
			Assistant: assistant,
			Failed:    true,
			TimedOut:  timedOut,
			Notice:    failureNotice(timedOut),
		}, nil
	}

	c.failures = 0
	assistant := c.newMessage(RoleAssistant, reply)
	c.messages = append(c.messages, assistant)
	return SendOutcome{User: userMsg, Assistant: assistant}, nil
}

// Clear replaces the conversation with a single greeting and resets the
// failure counter. It works regardless of controller state; a send in
// flight when Clear runs discards its result on completion.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = []Message{c.greetingMessage()}
	c.failures = 0
	c.epoch++
}

func (c *Controller) greetingMessage() Message {
	return c.newMessage(RoleAssistant, Greeting)
}

func (c *Controller) newMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: c.now(),
	}
}
