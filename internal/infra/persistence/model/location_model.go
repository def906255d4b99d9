package model

import (
	"time"

	"github.com/google/uuid"

	"drogo/internal/domain/entity"
)

// LocationSelectionModel mirrors the 'location_selections' table. One row
// per user holding the whole delivery selection as a document.
type LocationSelectionModel struct {
	UserID            uuid.UUID            `gorm:"type:uuid;primaryKey"`
	SelectedAddress   string               `gorm:"type:text"`
	TerraceAccessible bool                 `gorm:"not null;default:false"`
	UserLocation      *entity.GeoPoint     `gorm:"type:jsonb;serializer:json"`
	SelectedSpot      *entity.DeliverySpot `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationSelectionModel) TableName() string {
	return "location_selections"
}
