package chat

import (
	"fmt"
	"sync"
	"time"
)

// Sender identifies who wrote a transcript line.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one line of the chat transcript.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the ordered chat history for the session. Advisory push
// notifications and assistant replies both land here; nothing in the
// transcript ever feeds back into order status.
type Transcript struct {
	mu       sync.RWMutex
	messages []Message
	nextID   int
}

// NewTranscript starts a transcript seeded with the assistant's greeting.
func NewTranscript(greeting string) *Transcript {
	t := &Transcript{}
	if greeting != "" {
		t.Append(SenderBot, greeting)
	}
	return t
}

// Append adds a line and returns it.
func (t *Transcript) Append(sender Sender, text string) Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	msg := Message{
		ID:        fmt.Sprintf("%d", t.nextID),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	t.messages = append(t.messages, msg)
	return msg
}

// Messages returns a copy of the transcript in insertion order.
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	messages := make([]Message, len(t.messages))
	copy(messages, t.messages)
	return messages
}

// Len returns the number of lines.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
