package assistant

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies who wrote a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry as rendered by a front end.
type Message struct {
	ID   string    `json:"id"`
	Role Role      `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Transcript is the display history of one chat window. It is never sent
// back to the provider.
type Transcript struct {
	Messages []Message
	now      func() time.Time
}

// NewTranscript returns a transcript opened by WelcomeMessage.
func NewTranscript() *Transcript {
	t := &Transcript{now: time.Now}
	t.Add(RoleAssistant, WelcomeMessage)
	return t
}

// Add appends a message and returns it.
func (t *Transcript) Add(role Role, text string) Message {
	m := Message{ID: uuid.NewString(), Role: role, Text: text, At: t.now()}
	t.Messages = append(t.Messages, m)
	return m
}

// Ask records the trimmed user message and returns the text to send to
// Service.Reply. Blank messages are not recorded and return false.
func (t *Transcript) Ask(message string) (string, bool) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", false
	}
	t.Add(RoleUser, message)
	return message, true
}
