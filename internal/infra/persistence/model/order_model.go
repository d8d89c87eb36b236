package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CouponID        *uuid.UUID      `gorm:"type:uuid"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	CreatedAt       time.Time       `gorm:"index"`
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. SellerID is copied from the product.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(150);not null"`
	Quantity    int             `gorm:"not null;check:quantity > 0"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PreOrderModel mirrors the 'pre_orders' table.
type PreOrderModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity          int             `gorm:"not null;check:quantity > 0"`
	UnitPrice         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EstimatedDelivery *time.Time
	Status            string `gorm:"type:varchar(20);not null;index"`
	Notes             string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreOrderModel) TableName() string {
	return "pre_orders"
}
