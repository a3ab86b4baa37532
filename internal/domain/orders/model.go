package orders

import "time"

const StatusPending = "pending"

type Order struct {
	ID          string    `gorm:"column:id;primaryKey"`
	UserID      string    `gorm:"column:user_id"`
	UserType    string    `gorm:"column:user_type"`
	OrgUserID   *string   `gorm:"column:org_user_id"`
	Status      string    `gorm:"column:status"`
	TotalAmount float64   `gorm:"column:total_amount"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Order) TableName() string { return "orders" }

type CreateOrderInput struct {
	UserID      string
	UserType    string
	OrgUserID   *string
	TotalAmount float64
}
