package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

const collectionUsers = "users"

// UserStore implements ports.UserRepository backed by MongoDB.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	Username     string   `bson:"username"`
	PasswordHash string   `bson:"password_hash"`
	Roles        []string `bson:"roles"`
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	roles := make([]domain.Role, len(doc.Roles))
	for i, r := range doc.Roles {
		roles[i] = domain.Role(r)
	}
	return &domain.User{Username: doc.Username, PasswordHash: doc.PasswordHash, Roles: roles}, nil
}

// Seed upserts the given users so a fresh database carries the reference
// credential set.
func (s *UserStore) Seed(ctx context.Context, users []domain.User) error {
	for _, u := range users {
		roles := make([]string, len(u.Roles))
		for i, r := range u.Roles {
			roles[i] = string(r)
		}
		doc := userDoc{Username: u.Username, PasswordHash: u.PasswordHash, Roles: roles}

		_, err := s.col.UpdateOne(ctx,
			bson.M{"username": u.Username},
			bson.M{"$setOnInsert": doc},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// EnsureIndexes creates the unique username index.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
