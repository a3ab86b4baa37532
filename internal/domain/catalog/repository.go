package catalog

import (
	"context"

	"garments-api/internal/domain/patch"
)

type Repository interface {
	CreateCategory(ctx context.Context, category *Category) error
	GetCategory(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	UpdateCategory(ctx context.Context, id string, set patch.Set) error
	DeleteCategory(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id string) (*ProductView, error)
	ListProducts(ctx context.Context) ([]ProductView, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]ProductView, error)
	UpdateProduct(ctx context.Context, id string, set patch.Set) error
	DeleteProduct(ctx context.Context, id string) error
}
