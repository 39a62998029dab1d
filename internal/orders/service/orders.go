package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"comanda-system/internal/common/logger"
	"comanda-system/internal/domain"
	"comanda-system/internal/orders/repository"
)

// Publisher pushes store-change events to subscribed views.
type Publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

type OrdersServiceInterface interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error)
	Board(ctx context.Context) (domain.StatusBoard, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type OrdersService struct {
	repo repository.OrdersRepositoryInterface
	pub  Publisher
	lg   *logger.Logger
}

func NewOrdersService(repo repository.OrdersRepositoryInterface, pub Publisher, lg *logger.Logger) OrdersServiceInterface {
	return &OrdersService{repo: repo, pub: pub, lg: lg}
}

// CreateOrder validates the request, persists the order as pendente and
// returns the assigned number. The submitted total is stored as-is; the
// caller owns the price*quantity arithmetic.
func (s *OrdersService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.CreateOrderResponse, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return domain.CreateOrderResponse{}, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if len(req.Items) == 0 {
		return domain.CreateOrderResponse{}, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.CreateOrderResponse{}, fmt.Errorf("%w: invalid quantity for item %q", domain.ErrValidation, item.Name)
		}
	}

	order, err := s.repo.CreateOrder(ctx, domain.Order{
		CustomerName: req.CustomerName,
		Items:        req.Items,
		Total:        req.Total,
	})
	if err != nil {
		return domain.CreateOrderResponse{}, fmt.Errorf("create order: %w", err)
	}

	s.lg.Debug("order_created", map[string]any{"order_number": order.OrderNumber, "total": order.Total})
	s.publish(ctx, domain.Event{
		Type:        domain.EventOrderCreated,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		NewStatus:   order.Status,
		OccurredAt:  time.Now().UTC(),
	})

	return domain.CreateOrderResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
	}, nil
}

// Board partitions every live order into exactly one status bucket,
// oldest first. Computed fresh on every call; nothing is cached.
func (s *OrdersService) Board(ctx context.Context) (domain.StatusBoard, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return domain.StatusBoard{}, fmt.Errorf("list orders: %w", err)
	}

	board := domain.StatusBoard{
		Pending:   make([]domain.Order, 0),
		Preparing: make([]domain.Order, 0),
		Ready:     make([]domain.Order, 0),
		Delivered: make([]domain.Order, 0),
	}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusPending:
			board.Pending = append(board.Pending, o)
		case domain.StatusPreparing:
			board.Preparing = append(board.Preparing, o)
		case domain.StatusReady:
			board.Ready = append(board.Ready, o)
		case domain.StatusDelivered:
			board.Delivered = append(board.Delivered, o)
		}
	}
	return board, nil
}

// UpdateStatus advances an order along the lifecycle. Only forward edges
// are accepted; everything else fails with ErrInvalidTransition.
func (s *OrdersService) UpdateStatus(ctx context.Context, orderID, status string) error {
	to, err := domain.ParseStatus(status)
	if err != nil {
		return err
	}
	old, number, err := s.repo.UpdateStatus(ctx, orderID, to)
	if err != nil {
		return err
	}

	s.lg.Debug("order_status_changed", map[string]any{"order_number": number, "old": string(old), "new": string(to)})
	s.publish(ctx, domain.Event{
		Type:        domain.EventOrderStatusChanged,
		OrderID:     orderID,
		OrderNumber: number,
		OldStatus:   old,
		NewStatus:   to,
		OccurredAt:  time.Now().UTC(),
	})
	return nil
}

// DeleteOrder ends an order's life on pickup.
func (s *OrdersService) DeleteOrder(ctx context.Context, orderID string) error {
	number, err := s.repo.DeleteOrder(ctx, orderID)
	if err != nil {
		return err
	}

	s.lg.Debug("order_deleted", map[string]any{"order_number": number})
	s.publish(ctx, domain.Event{
		Type:        domain.EventOrderDeleted,
		OrderID:     orderID,
		OrderNumber: number,
		OccurredAt:  time.Now().UTC(),
	})
	return nil
}

// Notification failures never fail the mutation; the store already
// committed and views will catch up on their next fetch.
func (s *OrdersService) publish(ctx context.Context, ev domain.Event) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.lg.Error("event_publish_failed", err, map[string]any{"type": ev.Type, "order_number": ev.OrderNumber})
	}
}
