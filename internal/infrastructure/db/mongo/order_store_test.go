package mongo

import (
	"testing"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

func TestOrderListOptions_StableSort(t *testing.T) {
	opts := orderListOptions()

	sort, ok := opts.Sort.(bson.D)
	if !ok {
		t.Fatalf("expected bson.D sort, got %T", opts.Sort)
	}
	if len(sort) != 2 {
		t.Fatalf("expected 2 sort keys, got %d", len(sort))
	}
	if sort[0].Key != "created_at" || sort[0].Value != 1 {
		t.Fatalf("expected ascending created_at first, got %+v", sort[0])
	}
	if sort[1].Key != "_id" || sort[1].Value != 1 {
		t.Fatalf("expected ascending _id tiebreaker, got %+v", sort[1])
	}
}

func TestOrderDoc_RoundTrip(t *testing.T) {
	order := domain.Order{
		ID:      "o1",
		Status:  domain.StatusCreated,
		BuyerID: "dowhile2021",
		OrderLines: []domain.OrderLine{
			{ProductID: "p1", Qty: 10, Amount: decimal.NewFromFloat(10.00)},
			{ProductID: "p2", Qty: 5, Amount: decimal.NewFromFloat(5.00)},
		},
		TotalAmount: decimal.NewFromInt(125),
	}

	doc := toOrderDoc(&order)
	if doc.TotalAmount != "125" {
		t.Fatalf("expected total stored as decimal string, got %q", doc.TotalAmount)
	}
	if doc.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp to be set")
	}

	back, err := doc.toDomain()
	if err != nil {
		t.Fatalf("toDomain returned error: %v", err)
	}
	if back.Status != domain.StatusCreated || back.BuyerID != "dowhile2021" {
		t.Fatalf("unexpected order: %+v", back)
	}
	if !back.TotalAmount.Equal(order.TotalAmount) {
		t.Fatalf("total drifted: %s != %s", back.TotalAmount, order.TotalAmount)
	}
	if len(back.OrderLines) != 2 || !back.OrderLines[0].Amount.Equal(decimal.NewFromFloat(10.00)) {
		t.Fatalf("order lines drifted: %+v", back.OrderLines)
	}
}

func TestOrderDoc_MalformedAmount(t *testing.T) {
	doc := orderDoc{ID: "o1", Status: "Created", TotalAmount: "not-a-number"}

	if _, err := doc.toDomain(); err == nil {
		t.Fatalf("expected error for malformed stored amount")
	}
}
