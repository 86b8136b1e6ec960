package domain

import "github.com/shopspring/decimal"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusCreated          OrderStatus = "Created"
	StatusAccepted         OrderStatus = "Accepted"
	StatusShipped          OrderStatus = "Shipped"
	StatusReceived         OrderStatus = "Received"
	StatusRejectedByStore  OrderStatus = "RejectedByStore"
	StatusShippingFailed   OrderStatus = "ShippingFailed"
	StatusCancelledByBuyer OrderStatus = "CancelledByBuyer"
)

// validTransitions defines the allowed state machine transitions. Statuses
// absent from the map are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusCreated:  {StatusCancelledByBuyer, StatusAccepted, StatusRejectedByStore},
	StatusAccepted: {StatusShipped},
	StatusShipped:  {StatusShippingFailed, StatusReceived},
}

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusAccepted, StatusShipped, StatusReceived,
		StatusRejectedByStore, StatusShippingFailed, StatusCancelledByBuyer:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Address represents a postal location, used both as an order's shipping
// address and as a buyer's stored address.
type Address struct {
	AddressLine1 string `json:"addressLine1" bson:"address_line1"`
	AddressLine2 string `json:"addressLine2" bson:"address_line2"`
	City         string `json:"city" bson:"city"`
	State        string `json:"state" bson:"state"`
	ZipCode      string `json:"zipCode" bson:"zip_code"`
}

// OrderLine is a single product position within an order.
type OrderLine struct {
	ProductID string          `json:"productId" bson:"product_id"`
	Qty       int             `json:"qty" bson:"qty"`
	Amount    decimal.Decimal `json:"amount" bson:"amount"`
}

// Subtotal is qty times unit amount.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Amount.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Order is the aggregate root of the order service. TotalAmount is derived
// once at placement and never recomputed; Status is the only field mutated
// after creation, and only through Transition.
type Order struct {
	ID              string          `json:"id" bson:"_id"`
	Status          OrderStatus     `json:"status" bson:"status"`
	BuyerID         string          `json:"buyerId" bson:"buyer_id"`
	ShippingAddress Address         `json:"shippingAddress" bson:"shipping_address"`
	TotalAmount     decimal.Decimal `json:"totalAmount" bson:"total_amount"`
	OrderLines      []OrderLine     `json:"orderLines" bson:"order_lines"`
}

// Transition returns a copy of the order moved to target, or
// ErrInvalidStatusTransition when the state machine forbids the move.
func (o Order) Transition(target OrderStatus) (Order, error) {
	if !o.Status.CanTransitionTo(target) {
		return Order{}, ErrInvalidStatusTransition
	}
	o.Status = target
	return o, nil
}

// OrderTotal sums qty*amount over the given lines.
func OrderTotal(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
