package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Push event types delivered by the backend's notification channel.
const (
	EventOrderCreated = "order-created"
	EventOrderUpdated = "order-updated"
)

// pushMessage is the wire shape of a notification.
type pushMessage struct {
	Event   string `json:"event"`
	OrderID string `json:"order_ID,omitempty"`
	Status  string `json:"status,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Notifier listens on the backend's push channel and appends advisory lines
// to the chat transcript. Notifications are informational only; order status
// authority stays with the polling endpoint, so nothing here writes to the
// order store.
type Notifier struct {
	url        string
	sessionID  string
	transcript *Transcript
	log        logrus.FieldLogger
}

// NewNotifier creates a listener identified by a fresh per-session id.
func NewNotifier(wsURL string, transcript *Transcript, log logrus.FieldLogger) *Notifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Notifier{
		url:        wsURL,
		sessionID:  uuid.NewString(),
		transcript: transcript,
		log:        log,
	}
}

// SessionID returns the identifier notifications are correlated by.
func (n *Notifier) SessionID() string { return n.sessionID }

// Run connects and reads notifications until ctx is cancelled. Connection
// failures are logged and retried with a flat backoff; the kiosk works fine
// without the push channel.
func (n *Notifier) Run(ctx context.Context) {
	for {
		if err := n.listen(ctx); err != nil && ctx.Err() == nil {
			n.log.WithError(err).Warn("push channel disconnected")
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(10 * time.Second):
		}
	}
}

func (n *Notifier) listen(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, n.url+"?session="+n.sessionID, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	conn.SetReadLimit(64 * 1024)
	for {
		conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				return err
			}
			return nil
		}
		n.handle(raw)
	}
}

func (n *Notifier) handle(raw []byte) {
	var msg pushMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		n.log.WithError(err).Warn("unreadable push notification")
		return
	}

	switch msg.Event {
	case EventOrderCreated:
		n.transcript.Append(SenderBot, notificationText(msg, "Your order has been received."))
	case EventOrderUpdated:
		n.transcript.Append(SenderBot, notificationText(msg, "Your order has been updated."))
	default:
		n.log.WithField("event", msg.Event).Debug("ignoring push event")
	}
}

func notificationText(msg pushMessage, fallback string) string {
	if msg.Text != "" {
		return msg.Text
	}
	if msg.Status != "" {
		return fmt.Sprintf("%s Current status: %s.", fallback, msg.Status)
	}
	return fallback
}
