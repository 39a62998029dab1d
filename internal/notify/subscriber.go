package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"comanda-system/internal/common/logger"
	"comanda-system/internal/connections/rabbitmq"
	"comanda-system/internal/domain"
)

// BridgeToHub binds an exclusive queue to the fanout exchange and relays
// every event to the hub. Each api instance runs its own bridge, so a
// mutation served by one instance still reaches views connected to another.
func BridgeToHub(ctx context.Context, client *rabbitmq.Client, hub *Hub, lg *logger.Logger) error {
	ch := client.Channel()

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("declare bridge queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", ExchangeOrders, false, nil); err != nil {
		return fmt.Errorf("bind bridge queue: %w", err)
	}

	msgs, err := ch.Consume(q.Name, "", false, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume bridge queue: %w", err)
	}

	lg.Info("bridge_started", map[string]any{"queue": q.Name})
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			hub.Broadcast(d.Body)
			_ = d.Ack(false)
		}
	}
}

// RunLogger consumes the durable notification queue and logs every
// store-change event. This is the ops terminal of the system.
func RunLogger(ctx context.Context, client *rabbitmq.Client, lg *logger.Logger) error {
	ch := client.Channel()
	if err := Declare(ch); err != nil {
		return err
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	msgs, err := ch.Consume(QueueNotifications, "notification-subscriber", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", QueueNotifications, err)
	}

	lg.Info("subscriber_started", map[string]any{"queue": QueueNotifications})
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			var ev domain.Event
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				lg.Error("event_unmarshal_failed", err, nil)
				_ = d.Nack(false, false)
				continue
			}
			fields := map[string]any{"type": ev.Type, "occurred_at": ev.OccurredAt}
			if ev.OrderNumber > 0 {
				fields["order_number"] = ev.OrderNumber
			}
			if ev.OldStatus != "" {
				fields["old_status"] = string(ev.OldStatus)
			}
			if ev.NewStatus != "" {
				fields["new_status"] = string(ev.NewStatus)
			}
			lg.Info("event_received", fields)
			_ = d.Ack(false)
		}
	}
}
