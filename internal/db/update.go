package db

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// UpdateByID writes columns to the row of model with id and bumps
// updated_at. A missing row is not an error.
func UpdateByID(ctx context.Context, gormDB *gorm.DB, op string, model any, id string, columns map[string]any) error {
	values := make(map[string]any, len(columns)+1)
	for key, value := range columns {
		values[key] = value
	}
	values["updated_at"] = time.Now().UTC()

	err := gormDB.WithContext(ctx).Model(model).Where("id = ?", id).Updates(values).Error
	return TranslateError(op, err)
}
