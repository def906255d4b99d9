package model

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntryModel mirrors the 'waitlist_entries' table.
type WaitlistEntryModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                   string    `gorm:"type:varchar(100);not null"`
	Email                  string    `gorm:"type:varchar(255);not null;index"`
	Phone                  string    `gorm:"type:varchar(50)"`
	Address                string    `gorm:"type:text"`
	PreferredDeliveryItems string    `gorm:"type:text"`
	CreatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (WaitlistEntryModel) TableName() string {
	return "waitlist_entries"
}
