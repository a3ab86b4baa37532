package orders

import (
	"context"

	"garments-api/internal/domain/identity"
)

type Repository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context) ([]Order, error)
	ListOrdersByUser(ctx context.Context, userID, userType string) ([]Order, error)
	// UpdateStatus returns ErrOrderNotFound when no order has id.
	UpdateStatus(ctx context.Context, id, status string) error
}

type UserResolver interface {
	ResolveUser(ctx context.Context, userType identity.UserType, userID string) (*identity.UserRecord, error)
}
