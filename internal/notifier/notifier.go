// Package notifier delivers user-facing notifications over the message
// broker. Delivery is best effort: callers fire notifications after their
// own state is committed and ignore the returned error when the outcome
// must not depend on broker health.
package notifier

import (
	"log"
	"time"
)

type publisher interface {
	Publish(routingKey string, payload any) error
}

type Notifier interface {
	Notify(userID, eventType string, payload any) error
}

type Message struct {
	UserID    string    `json:"user_id"`
	EventType string    `json:"event_type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

type amqpNotifier struct {
	pub publisher
}

func NewAMQPNotifier(pub publisher) Notifier {
	return &amqpNotifier{pub: pub}
}

func (n *amqpNotifier) Notify(userID, eventType string, payload any) error {
	return n.pub.Publish("notify."+eventType, Message{
		UserID:    userID,
		EventType: eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
}

// logNotifier is used when no broker is configured, e.g. local development.
type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(userID, eventType string, payload any) error {
	log.Printf("[notify] user=%s event=%s payload=%+v", userID, eventType, payload)
	return nil
}
