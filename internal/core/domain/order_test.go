package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []OrderStatus {
	return []OrderStatus{
		StatusCreated, StatusAccepted, StatusShipped, StatusReceived,
		StatusRejectedByStore, StatusShippingFailed, StatusCancelledByBuyer,
	}
}

func TestOrderStatus_TransitionMatrix(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		StatusCreated:  {StatusCancelledByBuyer, StatusAccepted, StatusRejectedByStore},
		StatusAccepted: {StatusShipped},
		StatusShipped:  {StatusShippingFailed, StatusReceived},
	}

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_TerminalStatesHaveNoExits(t *testing.T) {
	terminal := []OrderStatus{StatusReceived, StatusRejectedByStore, StatusShippingFailed, StatusCancelledByBuyer}

	for _, from := range terminal {
		for _, to := range allStatuses() {
			assert.False(t, from.CanTransitionTo(to), "%s must be terminal", from)
		}
	}
}

func TestOrderStatus_NoSelfTransitions(t *testing.T) {
	for _, s := range allStatuses() {
		assert.False(t, s.CanTransitionTo(s))
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range allStatuses() {
		assert.True(t, s.IsValid())
	}
	assert.False(t, OrderStatus("Delivered").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrder_Transition(t *testing.T) {
	order := Order{ID: "o1", Status: StatusCreated}

	accepted, err := order.Transition(StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, accepted.Status)
	// value receiver: the original is untouched
	assert.Equal(t, StatusCreated, order.Status)

	_, err = accepted.Transition(StatusReceived)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestOrderTotal(t *testing.T) {
	lines := []OrderLine{
		{ProductID: "p1", Qty: 10, Amount: decimal.NewFromFloat(10.00)},
		{ProductID: "p2", Qty: 5, Amount: decimal.NewFromFloat(5.00)},
	}

	assert.True(t, OrderTotal(lines).Equal(decimal.NewFromFloat(125.00)))
	assert.True(t, OrderTotal(nil).Equal(decimal.Zero))
}

func TestOrderLine_Subtotal(t *testing.T) {
	line := OrderLine{Qty: 3, Amount: decimal.NewFromFloat(19.90)}
	assert.True(t, line.Subtotal().Equal(decimal.NewFromFloat(59.70)))
}
