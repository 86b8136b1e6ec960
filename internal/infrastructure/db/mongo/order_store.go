package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

const collectionOrders = "orders"

// OrderStore implements ports.OrderRepository backed by MongoDB. Monetary
// amounts are stored as decimal strings to avoid float drift.
type OrderStore struct {
	col *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{col: db.Collection(collectionOrders)}
}

type orderLineDoc struct {
	ProductID string `bson:"product_id"`
	Qty       int    `bson:"qty"`
	Amount    string `bson:"amount"`
}

type orderDoc struct {
	ID              string         `bson:"_id"`
	Status          string         `bson:"status"`
	BuyerID         string         `bson:"buyer_id"`
	ShippingAddress domain.Address `bson:"shipping_address"`
	TotalAmount     string         `bson:"total_amount"`
	OrderLines      []orderLineDoc `bson:"order_lines"`
	CreatedAt       time.Time      `bson:"created_at"`
}

func toOrderDoc(o *domain.Order) orderDoc {
	lines := make([]orderLineDoc, len(o.OrderLines))
	for i, l := range o.OrderLines {
		lines[i] = orderLineDoc{ProductID: l.ProductID, Qty: l.Qty, Amount: l.Amount.String()}
	}
	return orderDoc{
		ID:              o.ID,
		Status:          string(o.Status),
		BuyerID:         o.BuyerID,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount.String(),
		OrderLines:      lines,
		CreatedAt:       time.Now().UTC(),
	}
}

func (d orderDoc) toDomain() (*domain.Order, error) {
	total, err := decimal.NewFromString(d.TotalAmount)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.OrderLine, len(d.OrderLines))
	for i, l := range d.OrderLines {
		amount, err := decimal.NewFromString(l.Amount)
		if err != nil {
			return nil, err
		}
		lines[i] = domain.OrderLine{ProductID: l.ProductID, Qty: l.Qty, Amount: amount}
	}
	return &domain.Order{
		ID:              d.ID,
		Status:          domain.OrderStatus(d.Status),
		BuyerID:         d.BuyerID,
		ShippingAddress: d.ShippingAddress,
		TotalAmount:     total,
		OrderLines:      lines,
	}, nil
}

func (s *OrderStore) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.InsertOne(ctx, toOrderDoc(order))
	return err
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orderDoc
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain()
}

func (s *OrderStore) List(ctx context.Context, buyerID string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if buyerID != "" {
		filter["buyer_id"] = buyerID
	}

	cursor, err := s.col.Find(ctx, filter, orderListOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		order, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, cursor.Err()
}

// orderListOptions pins a total order on listings. Offset pagination walks
// the collection across requests, so results must come back in insertion
// order every time; natural order gives no such guarantee. The id breaks
// ties between documents sharing a creation timestamp.
func orderListOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
}

// UpdateStatus applies the state machine check and writes the new status with
// a precondition on the current one, so a lost race surfaces as an invalid
// transition instead of silently overwriting a newer state.
func (s *OrderStore) UpdateStatus(ctx context.Context, id string, target domain.OrderStatus) (*domain.Order, error) {
	current, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := current.Transition(target)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(current.Status)},
		bson.M{"$set": bson.M{"status": string(target)}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrInvalidStatusTransition
	}
	return &updated, nil
}
