package eventxamqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Abraxas-365/careersync/pkg/eventx"
	"github.com/streadway/amqp"
)

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends events to a topic exchange, routed by event type
type Publisher struct {
	open     func() (channel, error)
	exchange string
}

var _ eventx.Publisher = (*Publisher)(nil)

// NewPublisher declares the exchange and returns a publisher bound to it
func NewPublisher(conn *amqp.Connection, exchange string) (*Publisher, error) {
	open := func() (channel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		return ch, nil
	}
	return newPublisher(open, exchange)
}

func newPublisher(open func() (channel, error), exchange string) (*Publisher, error) {
	ch, err := open()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{open: open, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, ev *eventx.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", ev.ID, err)
	}

	return ch.Publish(
		p.exchange,
		ev.Type,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.ID.String(),
			Timestamp:    ev.OccurredAt,
			Type:         ev.Type,
			Body:         body,
		},
	)
}
