package catalog

import (
	"context"

	"garments-api/internal/domain/patch"
	"garments-api/pkg/idgen"
	"garments-api/pkg/money"
)

var (
	categoryFields = []patch.Field{
		{Key: "name", Kind: patch.String},
		{Key: "description", Kind: patch.NullableString},
	}
	productFields = []patch.Field{
		{Key: "name", Kind: patch.String},
		{Key: "category_id", Kind: patch.String},
		{Key: "description", Kind: patch.NullableString},
		{Key: "price", Kind: patch.Money},
		{Key: "image", Kind: patch.NullableString},
	}
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	category := Category{
		ID:          idgen.New(idgen.PrefixProductCategory),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Service) GetCategory(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, changes map[string]any) error {
	set, err := patch.Apply(changes, categoryFields)
	if err != nil {
		return err
	}
	return s.repo.UpdateCategory(ctx, id, set)
}

// DeleteCategory removes the category and every product in it.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	product := Product{
		ID:          idgen.New(idgen.PrefixProduct),
		Name:        input.Name,
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Price:       money.Round(input.Price),
		Image:       input.Image,
	}
	if err := s.repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*ProductView, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]ProductView, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) ListProductsByCategory(ctx context.Context, categoryID string) ([]ProductView, error) {
	return s.repo.ListProductsByCategory(ctx, categoryID)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, changes map[string]any) error {
	set, err := patch.Apply(changes, productFields)
	if err != nil {
		return err
	}
	return s.repo.UpdateProduct(ctx, id, set)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}
