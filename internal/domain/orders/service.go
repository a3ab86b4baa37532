package orders

import (
	"context"
	"strings"

	"garments-api/internal/domain/identity"
	"garments-api/pkg/idgen"
	"garments-api/pkg/money"
)

type Service struct {
	repo  Repository
	users UserResolver
}

func NewService(repo Repository, users UserResolver) *Service {
	return &Service{repo: repo, users: users}
}

// CreateOrder records a new pending order for a known user.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	userType, err := identity.ParseUserType(input.UserType)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.ResolveUser(ctx, userType, input.UserID); err != nil {
		return nil, err
	}

	order := Order{
		ID:          idgen.New(idgen.PrefixOrder),
		UserID:      input.UserID,
		UserType:    string(userType),
		OrgUserID:   input.OrgUserID,
		Status:      StatusPending,
		TotalAmount: money.Round(input.TotalAmount),
	}
	if err := s.repo.CreateOrder(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID, userType string) ([]Order, error) {
	parsed, err := identity.ParseUserType(userType)
	if err != nil {
		return nil, err
	}
	return s.repo.ListOrdersByUser(ctx, userID, string(parsed))
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrStatusRequired
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
