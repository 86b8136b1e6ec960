package memstore

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/dowhile/storefront-system/internal/core/domain"
)

// Fixture usernames used across all seeded stores.
const (
	FixtureBuyerUsername = "dowhile2021"
	FixtureAdminUsername = "theadmin"
)

// FixtureUsers returns the reference credential set: one buyer and one admin.
// Passwords are bcrypt-hashed at seed time.
func FixtureUsers() []domain.User {
	return []domain.User{
		{
			Username:     FixtureBuyerUsername,
			PasswordHash: mustHash("password123"),
			Roles:        []domain.Role{domain.RoleBuyer},
		},
		{
			Username:     FixtureAdminUsername,
			PasswordHash: mustHash("strongpassword"),
			Roles:        []domain.Role{domain.RoleAdmin},
		},
	}
}

// FixtureOrders returns a single completed order for the fixture buyer,
// totalling 125.00.
func FixtureOrders() []domain.Order {
	lines := []domain.OrderLine{
		{ProductID: uuid.NewString(), Qty: 10, Amount: decimal.NewFromFloat(10.00)},
		{ProductID: uuid.NewString(), Qty: 5, Amount: decimal.NewFromFloat(5.00)},
	}
	return []domain.Order{
		{
			ID:              uuid.NewString(),
			Status:          domain.StatusReceived,
			BuyerID:         FixtureBuyerUsername,
			ShippingAddress: fixtureAddress(),
			TotalAmount:     domain.OrderTotal(lines),
			OrderLines:      lines,
		},
	}
}

// FixtureProducts returns 50 deterministic catalog entries.
func FixtureProducts() []domain.Product {
	departments := []string{"Eletrônicos", "Casa", "Esportes", "Livros", "Moda"}
	categories := []string{"Fone", "Cadeira", "Bola", "Romance", "Camiseta"}
	adjectives := []string{"Incrível", "Rústico", "Prático", "Genérico", "Refinado"}

	products := make([]domain.Product, 0, 50)
	for i := 0; i < 50; i++ {
		dept := departments[i%len(departments)]
		cat := categories[i%len(categories)]
		adj := adjectives[(i/len(categories))%len(adjectives)]
		products = append(products, domain.Product{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("%s %s %d", cat, adj, i+1),
			Description: fmt.Sprintf("%s %s de alta qualidade do departamento %s", cat, adj, dept),
			Department:  dept,
			Category:    cat,
			Price:       decimal.NewFromInt(int64(10 + i*3)).Add(decimal.NewFromFloat(0.90)),
			Image:       fmt.Sprintf("https://picsum.photos/seed/%d/640/480", i+1),
		})
	}
	return products
}

// FixtureProfiles returns the buyer directory profile records.
func FixtureProfiles() map[string]domain.Profile {
	return map[string]domain.Profile{
		FixtureBuyerUsername: {
			Username:  FixtureBuyerUsername,
			FirstName: "Joana",
			LastName:  "Silva",
			BirthDate: "1993-04-18T00:00:00.000Z",
		},
	}
}

// FixtureAddresses returns the buyer directory address records.
func FixtureAddresses() map[string]domain.Address {
	return map[string]domain.Address{
		FixtureBuyerUsername: fixtureAddress(),
	}
}

func fixtureAddress() domain.Address {
	return domain.Address{
		AddressLine1: "Rua das Laranjeiras, 742",
		AddressLine2: "Apto 31",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "04101-300",
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
