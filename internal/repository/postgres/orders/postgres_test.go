package orders

import (
	"context"
	"testing"

	"garments-api/internal/db/dbtest"
	"garments-api/internal/domain/apperr"
	ordersdomain "garments-api/internal/domain/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLifecycle(t *testing.T) {
	repo := NewPostgres(dbtest.Open(t))
	ctx := context.Background()

	orgUser := "ou-00000001"
	order := &ordersdomain.Order{ID: "ord-00000001", UserID: "ind-00000001", UserType: "individual", OrgUserID: &orgUser, Status: ordersdomain.StatusPending, TotalAmount: 1499.99}
	require.NoError(t, repo.CreateOrder(ctx, order))

	got, err := repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
	assert.InDelta(t, 1499.99, got.TotalAmount, 0.001)
	require.NotNil(t, got.OrgUserID)
	assert.Equal(t, orgUser, *got.OrgUserID)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, "delivered"))
	require.NoError(t, repo.UpdateStatus(ctx, order.ID, "delivered"))
	got, err = repo.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "delivered", got.Status)

	err = repo.UpdateStatus(ctx, "ord-missing0", "delivered")
	assert.ErrorIs(t, err, ordersdomain.ErrOrderNotFound)

	_, err = repo.GetOrder(ctx, "ord-missing0")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListOrdersByUser(t *testing.T) {
	repo := NewPostgres(dbtest.Open(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateOrder(ctx, &ordersdomain.Order{ID: "ord-00000001", UserID: "ind-00000001", UserType: "individual", Status: "pending", TotalAmount: 1}))
	require.NoError(t, repo.CreateOrder(ctx, &ordersdomain.Order{ID: "ord-00000002", UserID: "ind-00000001", UserType: "org_user", Status: "pending", TotalAmount: 2}))
	require.NoError(t, repo.CreateOrder(ctx, &ordersdomain.Order{ID: "ord-00000003", UserID: "ind-00000002", UserType: "individual", Status: "pending", TotalAmount: 3}))

	mine, err := repo.ListOrdersByUser(ctx, "ind-00000001", "individual")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "ord-00000001", mine[0].ID)

	all, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderUserTypeChecked(t *testing.T) {
	repo := NewPostgres(dbtest.Open(t))

	err := repo.CreateOrder(context.Background(), &ordersdomain.Order{ID: "ord-00000001", UserID: "x", UserType: "guest", Status: "pending", TotalAmount: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStorage)
}
