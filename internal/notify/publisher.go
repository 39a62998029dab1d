package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"comanda-system/internal/connections/rabbitmq"
	"comanda-system/internal/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// ExchangeOrders fans every store-change event out to all subscribers:
	// the api instances' websocket bridges and the notification terminal.
	ExchangeOrders = "orders_fanout"

	// QueueNotifications is the durable queue of the notification terminal.
	QueueNotifications = "notifications.q"
)

// Declare sets up the fanout exchange and the notification queue.
// Idempotent; every process declares on boot.
func Declare(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(ExchangeOrders, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", ExchangeOrders, err)
	}
	if _, err := ch.QueueDeclare(QueueNotifications, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", QueueNotifications, err)
	}
	if err := ch.QueueBind(QueueNotifications, "", ExchangeOrders, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", QueueNotifications, err)
	}
	return nil
}

// Publisher sends store-change events on the fanout exchange with
// persistent delivery and broker confirms.
type Publisher struct {
	client *rabbitmq.Client
}

func NewPublisher(client *rabbitmq.Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	correlation := ""
	if ev.OrderNumber > 0 {
		correlation = strconv.FormatInt(ev.OrderNumber, 10)
	}
	headers := amqp.Table{"x-source": "comanda-api", "x-event": ev.Type}
	if err := p.client.Publish(ctx, ExchangeOrders, "", body, headers, uuid.NewString(), correlation); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}
