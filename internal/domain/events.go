package domain

import "time"

// Event types published on the orders fanout after each committed mutation.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderDeleted       = "order.deleted"
	EventMenuReseeded       = "menu.reseeded"
)

// Event is the store-change notification pushed to every subscribed view.
// Views treat it as "the order set changed" and re-fetch the board; the
// status fields exist for log readability, not for incremental updates.
type Event struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id,omitempty"`
	OrderNumber int64     `json:"order_number,omitempty"`
	OldStatus   Status    `json:"old_status,omitempty"`
	NewStatus   Status    `json:"new_status,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
