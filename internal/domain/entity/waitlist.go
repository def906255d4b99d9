// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry captures delivery intent from a visitor outside the current
// service area, so they can be notified when coverage expands.
type WaitlistEntry struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone,omitempty"`
	Address                string    `json:"address,omitempty"`
	PreferredDeliveryItems string    `json:"preferred_delivery_items,omitempty"`
	CreatedAt              time.Time `json:"timestamp"`
}
