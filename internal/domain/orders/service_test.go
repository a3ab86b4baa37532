package orders

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"garments-api/internal/domain/apperr"
	"garments-api/internal/domain/identity"
)

type fakeOrderRepo struct {
	orders map[string]*Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*Order)}
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetOrder(ctx context.Context, id string) (*Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) ListOrders(ctx context.Context) ([]Order, error) {
	result := make([]Order, 0, len(r.orders))
	for _, order := range r.orders {
		result = append(result, *order)
	}
	return result, nil
}

func (r *fakeOrderRepo) ListOrdersByUser(ctx context.Context, userID, userType string) ([]Order, error) {
	result := make([]Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID && order.UserType == userType {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	return nil
}

type fakeResolver map[string]identity.UserType

func (f fakeResolver) ResolveUser(ctx context.Context, userType identity.UserType, userID string) (*identity.UserRecord, error) {
	if f[userID] != userType {
		return nil, identity.ErrUserNotFound
	}
	return &identity.UserRecord{ID: userID, Type: userType}, nil
}

func newTestService() (*Service, *fakeOrderRepo) {
	repo := newFakeOrderRepo()
	return NewService(repo, fakeResolver{"ind-00000001": identity.UserTypeIndividual}), repo
}

func TestCreateOrderStartsPending(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	order, err := service.CreateOrder(ctx, CreateOrderInput{UserID: "ind-00000001", UserType: "individual", TotalAmount: 1200})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.Status != StatusPending {
		t.Fatalf("expected pending, got %q", order.Status)
	}
	if !regexp.MustCompile(`^ord-[0-9a-f]{8}$`).MatchString(order.ID) {
		t.Fatalf("unexpected id %q", order.ID)
	}

	got, err := service.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.TotalAmount != 1200 || got.UserType != "individual" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestCreateOrderRoundsTotal(t *testing.T) {
	service, repo := newTestService()

	order, err := service.CreateOrder(context.Background(), CreateOrderInput{UserID: "ind-00000001", UserType: "individual", TotalAmount: 0.1 + 0.2})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.TotalAmount != 0.3 || repo.orders[order.ID].TotalAmount != 0.3 {
		t.Fatalf("expected total 0.3, got %v", order.TotalAmount)
	}
}

func TestCreateOrderUnknownUser(t *testing.T) {
	service, repo := newTestService()

	_, err := service.CreateOrder(context.Background(), CreateOrderInput{UserID: "ou-00000001", UserType: "org_user", TotalAmount: 1})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := service.CreateOrder(context.Background(), CreateOrderInput{UserID: "ind-00000001", UserType: "vip", TotalAmount: 1}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("expected no orders stored")
	}
}

func TestUpdateStatus(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	order, _ := service.CreateOrder(ctx, CreateOrderInput{UserID: "ind-00000001", UserType: "individual", TotalAmount: 10})

	if err := service.UpdateStatus(ctx, order.ID, "shipped"); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if repo.orders[order.ID].Status != "shipped" {
		t.Fatalf("status not updated")
	}
	if err := service.UpdateStatus(ctx, order.ID, "  "); !errors.Is(err, ErrStatusRequired) {
		t.Fatalf("expected status required, got %v", err)
	}
	if err := service.UpdateStatus(ctx, "ord-missing0", "shipped"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found, got %v", err)
	}
}

func TestListOrdersByUser(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := service.CreateOrder(ctx, CreateOrderInput{UserID: "ind-00000001", UserType: "individual", TotalAmount: 10}); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	orders, err := service.ListOrdersByUser(ctx, "ind-00000001", "individual")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected two orders, got %d", len(orders))
	}
	if _, err := service.ListOrdersByUser(ctx, "ind-00000001", "x"); !errors.Is(err, identity.ErrInvalidUserType) {
		t.Fatalf("expected invalid user type, got %v", err)
	}
}
