package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. One row per user, overwritten on
// every cart mutation.
type CartModel struct {
	UserID    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Items     map[string]int `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
