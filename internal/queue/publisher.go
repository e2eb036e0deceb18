package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/hotel-booking/internal/logger"
)

// Queue names declared on demand before publishing.
const (
	confirmedQueue = "booking.confirmed"
	cancelledQueue = "booking.cancelled"
)

// Publisher emits booking lifecycle events to RabbitMQ.  It dials per
// publish and never panics; failures are logged and otherwise ignored
// so broker outages cannot fail a booking that already committed.  An
// empty URL disables publishing entirely.
type Publisher struct {
	url string
	log *logger.Logger
}

// NewPublisher returns a Publisher for the given AMQP URL.  An empty
// url yields a disabled publisher whose methods are no-ops.
func NewPublisher(url string, log *logger.Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// BookingConfirmed publishes ev to the booking.confirmed queue.
func (p *Publisher) BookingConfirmed(ctx context.Context, ev BookingConfirmedEvent) {
	p.publish(ctx, confirmedQueue, ev)
}

// BookingCancelled publishes ev to the booking.cancelled queue.
func (p *Publisher) BookingCancelled(ctx context.Context, ev BookingCancelledEvent) {
	p.publish(ctx, cancelledQueue, ev)
}

func (p *Publisher) publish(ctx context.Context, queueName string, payload any) {
	if p.url == "" {
		return
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("rabbitmq dial failed", "queue", queueName, "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq channel open failed", "queue", queueName, "error", err)
		return
	}
	defer func() { _ = ch.Close() }()

	// Durable queue so messages survive broker restarts.  Declaration
	// is idempotent.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.log.Warn("rabbitmq queue declare failed", "queue", queueName, "error", err)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		p.log.Warn("rabbitmq marshal failed", "queue", queueName, "error", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = ch.PublishWithContext(pubCtx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.log.Warn("rabbitmq publish failed", "queue", queueName, "error", err)
	}
}
