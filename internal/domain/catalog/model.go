package catalog

import "time"

type Category struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Category) TableName() string { return "product_categories" }

type Product struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	CategoryID  string    `gorm:"column:category_id"`
	Description *string   `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	Image       *string   `gorm:"column:image"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Product) TableName() string { return "products" }

// ProductView is a Product joined with its category name.
type ProductView struct {
	Product      `gorm:"embedded"`
	CategoryName string `gorm:"column:category_name"`
}

type CreateCategoryInput struct {
	Name        string
	Description *string
}

type CreateProductInput struct {
	Name        string
	CategoryID  string
	Description *string
	Price       float64
	Image       *string
}
