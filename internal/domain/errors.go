package domain

import "errors"

var (
	// ErrNotFound reports a mutation or lookup against an order id that does
	// not exist (anymore).
	ErrNotFound = errors.New("order not found")

	// ErrInvalidTransition reports a status change outside the legal
	// pendente -> preparando -> pronto -> entregue pipeline.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation reports a request rejected before touching the store.
	ErrValidation = errors.New("validation failed")
)
