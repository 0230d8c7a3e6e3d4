package consumer

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wuttipat/court-booking-service/internal/repository"
	"github.com/wuttipat/court-booking-service/pkg/rabbitmq"
)

// PaymentEvent is the payload published by the payment service once a charge
// settles. BookingRef is the booking's public reference, not its row ID.
type PaymentEvent struct {
	BookingRef string  `json:"booking_ref"`
	PaymentRef string  `json:"payment_ref"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type PaymentConsumer struct {
	consumer    *rabbitmq.Consumer
	bookingRepo repository.BookingRepository
}

func NewPaymentConsumer(consumer *rabbitmq.Consumer, bookingRepo repository.BookingRepository) *PaymentConsumer {
	return &PaymentConsumer{consumer: consumer, bookingRepo: bookingRepo}
}

// Start consumes payment events until the context is cancelled. Malformed
// messages are rejected without requeue; transient failures are requeued so
// the stamp is retried.
func (c *PaymentConsumer) Start(ctx context.Context) error {
	msgs, err := c.consumer.Consume()
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()
	return nil
}

func (c *PaymentConsumer) handle(ctx context.Context, msg amqp.Delivery) {
	if msg.RoutingKey != "payment.paid" {
		_ = msg.Ack(false)
		return
	}

	var event PaymentEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("[payment] malformed event: %v", err)
		_ = msg.Nack(false, false)
		return
	}
	if event.BookingRef == "" || event.PaymentRef == "" {
		log.Printf("[payment] event missing references: %s", string(msg.Body))
		_ = msg.Nack(false, false)
		return
	}

	stamped, err := c.bookingRepo.StampPaymentRef(ctx, event.BookingRef, event.PaymentRef)
	if err != nil {
		log.Printf("[payment] stamp %s: %v", event.BookingRef, err)
		_ = msg.Nack(false, true)
		return
	}
	if stamped == 0 {
		// Unknown reference or an already-stamped booking; either way the
		// event is spent.
		log.Printf("[payment] no booking updated for ref %s", event.BookingRef)
	}
	_ = msg.Ack(false)
}
