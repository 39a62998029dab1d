package domain

import "fmt"

// Status is an order's lifecycle stage. Labels are the canonical Portuguese
// values stored in the database and exposed on the wire.
type Status string

const (
	StatusPending   Status = "pendente"
	StatusPreparing Status = "preparando"
	StatusReady     Status = "pronto"
	StatusDelivered Status = "entregue"
)

// Statuses lists every lifecycle stage in pipeline order.
func Statuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered}
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

// transitions holds the only legal edges of the lifecycle. Pickup ends an
// order's life via deletion, not a transition.
var transitions = map[Status]Status{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

// ValidateTransition rejects regressions and skipped stages.
func ValidateTransition(from, to Status) error {
	if transitions[from] == to {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
