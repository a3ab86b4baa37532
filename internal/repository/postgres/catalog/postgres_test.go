package catalog

import (
	"context"
	"testing"

	"garments-api/internal/db/dbtest"
	"garments-api/internal/domain/apperr"
	catalogdomain "garments-api/internal/domain/catalog"
	"garments-api/internal/domain/patch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductViewJoinsCategory(t *testing.T) {
	repo := NewPostgres(dbtest.Open(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateCategory(ctx, &catalogdomain.Category{ID: "pc-00000001", Name: "Shirts"}))
	description := "Cotton"
	require.NoError(t, repo.CreateProduct(ctx, &catalogdomain.Product{ID: "p-00000001", Name: "Oxford", CategoryID: "pc-00000001", Price: 499.5, Description: &description}))

	view, err := repo.GetProduct(ctx, "p-00000001")
	require.NoError(t, err)
	assert.Equal(t, "Oxford", view.Name)
	assert.Equal(t, "Shirts", view.CategoryName)
	assert.InDelta(t, 499.5, view.Price, 0.001)
	require.NotNil(t, view.Description)
	assert.Equal(t, "Cotton", *view.Description)
	assert.Nil(t, view.Image)

	byCategory, err := repo.ListProductsByCategory(ctx, "pc-00000001")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	_, err = repo.GetProduct(ctx, "p-missing0")
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestProductRequiresCategory(t *testing.T) {
	repo := NewPostgres(dbtest.Open(t))

	err := repo.CreateProduct(context.Background(), &catalogdomain.Product{ID: "p-00000001", Name: "Oxford", CategoryID: "pc-missing0", Price: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteCategoryCascadesProducts(t *testing.T) {
	repo := NewPostgres(dbtest.Open(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateCategory(ctx, &catalogdomain.Category{ID: "pc-00000001", Name: "Shirts"}))
	require.NoError(t, repo.CreateCategory(ctx, &catalogdomain.Category{ID: "pc-00000002", Name: "Trousers"}))
	require.NoError(t, repo.CreateProduct(ctx, &catalogdomain.Product{ID: "p-00000001", Name: "Oxford", CategoryID: "pc-00000001", Price: 1}))
	require.NoError(t, repo.CreateProduct(ctx, &catalogdomain.Product{ID: "p-00000002", Name: "Chino", CategoryID: "pc-00000002", Price: 2}))

	require.NoError(t, repo.DeleteCategory(ctx, "pc-00000001"))
	require.NoError(t, repo.DeleteCategory(ctx, "pc-00000001"))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p-00000002", products[0].ID)
}

func TestUpdateProduct(t *testing.T) {
	repo := NewPostgres(dbtest.Open(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateCategory(ctx, &catalogdomain.Category{ID: "pc-00000001", Name: "Shirts"}))
	require.NoError(t, repo.CreateProduct(ctx, &catalogdomain.Product{ID: "p-00000001", Name: "Oxford", CategoryID: "pc-00000001", Price: 1}))

	require.NoError(t, repo.UpdateProduct(ctx, "p-00000001", patch.Set{"price": 12.75, "image": "oxford.png"}))

	view, err := repo.GetProduct(ctx, "p-00000001")
	require.NoError(t, err)
	assert.InDelta(t, 12.75, view.Price, 0.001)
	require.NotNil(t, view.Image)
	assert.Equal(t, "oxford.png", *view.Image)

	err = repo.UpdateProduct(ctx, "p-00000001", patch.Set{"category_id": "pc-missing0"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
