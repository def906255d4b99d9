package model

import (
	"time"

	"github.com/google/uuid"

	"drogo/internal/domain/entity"
)

// OrderModel mirrors the 'orders' table. Items and the delivery spot are
// snapshots frozen at placement time, stored as documents; only Status and
// UpdatedAt change after creation.
type OrderModel struct {
	ID                uuid.UUID            `gorm:"type:uuid;primary_key"`
	UserID            uuid.UUID            `gorm:"type:uuid;not null;index"`
	Items             []entity.OrderItem   `gorm:"type:jsonb;serializer:json;not null"`
	TotalAmount       int                  `gorm:"not null"`
	DeliveryAddress   string               `gorm:"type:text;not null"`
	DeliverySpot      *entity.DeliverySpot `gorm:"type:jsonb;serializer:json"`
	TerraceAccessible bool                 `gorm:"not null;default:false"`
	Status            string               `gorm:"type:varchar(20);not null;index"`
	EstimatedDelivery time.Time            `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
