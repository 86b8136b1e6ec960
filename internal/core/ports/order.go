package ports

import (
	"context"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. UpdateStatus is
// the only write path after creation and must apply the state machine check
// and the write as one serialized step per record.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns all orders, scoped to buyerID when non-empty, in
	// insertion order.
	List(ctx context.Context, buyerID string) ([]domain.Order, error)
	// UpdateStatus transitions the order to target and returns the updated
	// order. ErrNotFound when the order does not exist;
	// ErrInvalidStatusTransition when the state machine forbids the move.
	UpdateStatus(ctx context.Context, id string, target domain.OrderStatus) (*domain.Order, error)
}

// PlaceOrderInput carries everything needed to place a new order.
type PlaceOrderInput struct {
	BuyerID         string
	ShippingAddress domain.Address
	OrderLines      []domain.OrderLine
}

// ListOrdersInput carries the list parameters. BuyerID empty means no filter.
type ListOrdersInput struct {
	BuyerID string
	Offset  int
	Limit   int
}

// OrderService defines the order lifecycle use cases.
type OrderService interface {
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	ChangeStatus(ctx context.Context, id string, target domain.OrderStatus) (*domain.Order, error)
	List(ctx context.Context, input ListOrdersInput) (domain.Page[domain.Order], error)
}
