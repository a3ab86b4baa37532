package catalog

import (
	"context"
	"errors"

	"garments-api/internal/db"
	catalogdomain "garments-api/internal/domain/catalog"
	"garments-api/internal/domain/patch"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *catalogdomain.Category) error {
	return db.TranslateError("product_categories.create", r.db.WithContext(ctx).Create(category).Error)
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id string) (*catalogdomain.Category, error) {
	var category catalogdomain.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogdomain.ErrCategoryNotFound
		}
		return nil, db.TranslateError("product_categories.get", err)
	}
	return &category, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]catalogdomain.Category, error) {
	var categories []catalogdomain.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, db.TranslateError("product_categories.list", err)
	}
	return categories, nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, id string, set patch.Set) error {
	return db.UpdateByID(ctx, r.db, "product_categories.update", &catalogdomain.Category{}, id, set)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&catalogdomain.Category{}).Error
	return db.TranslateError("product_categories.delete", err)
}

func (r *PostgresRepository) CreateProduct(ctx context.Context, product *catalogdomain.Product) error {
	return db.TranslateError("products.create", r.db.WithContext(ctx).Create(product).Error)
}

func (r *PostgresRepository) productViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("products").
		Select("products.*, product_categories.name AS category_name").
		Joins("JOIN product_categories ON product_categories.id = products.category_id")
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*catalogdomain.ProductView, error) {
	var view catalogdomain.ProductView
	if err := r.productViews(ctx).Where("products.id = ?", id).Take(&view).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, db.TranslateError("products.get", err)
	}
	return &view, nil
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]catalogdomain.ProductView, error) {
	var views []catalogdomain.ProductView
	if err := r.productViews(ctx).Order("products.name asc").Find(&views).Error; err != nil {
		return nil, db.TranslateError("products.list", err)
	}
	return views, nil
}

func (r *PostgresRepository) ListProductsByCategory(ctx context.Context, categoryID string) ([]catalogdomain.ProductView, error) {
	var views []catalogdomain.ProductView
	err := r.productViews(ctx).
		Where("products.category_id = ?", categoryID).
		Order("products.name asc").
		Find(&views).Error
	if err != nil {
		return nil, db.TranslateError("products.list_by_category", err)
	}
	return views, nil
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, id string, set patch.Set) error {
	return db.UpdateByID(ctx, r.db, "products.update", &catalogdomain.Product{}, id, set)
}

func (r *PostgresRepository) DeleteProduct(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&catalogdomain.Product{}).Error
	return db.TranslateError("products.delete", err)
}
