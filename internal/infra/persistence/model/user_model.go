// Package model contains the GORM persistence structs mirroring the
// database tables. Domain entities never leak GORM tags; mapping happens in
// the repository implementations.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PhotoURL     string    `gorm:"type:text"`
	Provider     string    `gorm:"type:varchar(50);not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	DeviceTokens []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
