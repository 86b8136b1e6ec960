package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dowhile/storefront-system/internal/core/domain"
	"github.com/dowhile/storefront-system/internal/core/ports"
)

// OrderService owns the order lifecycle: placement, status transitions, and
// listing. It is the only mutation path for order status.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// Place creates a new order in status Created. The total amount is derived
// here, once, as the sum of qty*amount over the order lines.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		ID:              uuid.NewString(),
		Status:          domain.StatusCreated,
		BuyerID:         input.BuyerID,
		ShippingAddress: input.ShippingAddress,
		TotalAmount:     domain.OrderTotal(input.OrderLines),
		OrderLines:      input.OrderLines,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("buyer_id", input.BuyerID).Msg("failed to create order")
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("buyer_id", order.BuyerID).
		Str("total_amount", order.TotalAmount.String()).
		Msg("order placed")

	return order, nil
}

// Get returns a single order by id.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// ChangeStatus moves the order to target when the state machine allows it.
func (s *OrderService) ChangeStatus(ctx context.Context, id string, target domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("order_id", id).Str("status", string(target)).Msg("order status changed")
	return order, nil
}

// List returns one page of orders, scoped to a buyer when requested.
func (s *OrderService) List(ctx context.Context, input ports.ListOrdersInput) (domain.Page[domain.Order], error) {
	orders, err := s.repo.List(ctx, input.BuyerID)
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	return domain.Paginate(input.Offset, input.Limit, orders), nil
}
