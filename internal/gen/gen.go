// Package gen produces fake users and orders for seeding and tests.
package gen

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"demo/orderflow/internal/model"
)

func SeedOnce() { gofakeit.Seed(time.Now().UnixNano()) }

func FakeUser() model.NewUser {
	first, last := gofakeit.FirstName(), gofakeit.LastName()
	return model.NewUser{
		Name: first + " " + last,
		// A UUID fragment keeps emails unique across large seeds.
		Email:     strings.ToLower(first+"."+last+"."+gofakeit.UUID()[:8]) + "@" + gofakeit.DomainName(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func FakeOrder(userID int64) model.NewOrder {
	return model.NewOrder{
		UserID:    userID,
		Item:      gofakeit.ProductName(),
		Amount:    int64(gofakeit.Number(1, 10000)),
		Status:    model.StatusCreated,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// UserRequest is FakeUser shaped as the POST /users body.
func UserRequest() map[string]any {
	u := FakeUser()
	return map[string]any{"name": u.Name, "email": u.Email}
}

// OrderRequest is FakeOrder shaped as the POST /orders body.
func OrderRequest(userID int64) map[string]any {
	o := FakeOrder(userID)
	return map[string]any{"user_id": o.UserID, "item": o.Item, "amount": o.Amount}
}
