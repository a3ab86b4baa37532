package orders

import (
	"context"
	"errors"
	"time"

	"garments-api/internal/db"
	ordersdomain "garments-api/internal/domain/orders"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *ordersdomain.Order) error {
	return db.TranslateError("orders.create", r.db.WithContext(ctx).Create(order).Error)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*ordersdomain.Order, error) {
	var order ordersdomain.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordersdomain.ErrOrderNotFound
		}
		return nil, db.TranslateError("orders.get", err)
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]ordersdomain.Order, error) {
	var orders []ordersdomain.Order
	if err := r.db.WithContext(ctx).Order("created_at desc, id asc").Find(&orders).Error; err != nil {
		return nil, db.TranslateError("orders.list", err)
	}
	return orders, nil
}

func (r *PostgresRepository) ListOrdersByUser(ctx context.Context, userID, userType string) ([]ordersdomain.Order, error) {
	var orders []ordersdomain.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND user_type = ?", userID, userType).
		Order("created_at desc, id asc").
		Find(&orders).Error
	if err != nil {
		return nil, db.TranslateError("orders.list_by_user", err)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).
		Model(&ordersdomain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return db.TranslateError("orders.update_status", result.Error)
	}
	if result.RowsAffected == 0 {
		return ordersdomain.ErrOrderNotFound
	}
	return nil
}
