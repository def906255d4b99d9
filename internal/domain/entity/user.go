// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Auth provider tags. Sign-in is mocked end to end; the provider tag only
// records which flow created the account.
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User is a signed-in customer account. Accounts are created lazily at
// sign-in and removed at sign-out in the local store; orders referencing the
// user survive as append-only history.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Provider     string    `json:"provider"`
	PasswordHash string    `json:"-"` // bcrypt hash for email accounts; empty for google.
	IsAdmin      bool      `json:"is_admin"`
	DeviceTokens []string  `json:"device_tokens,omitempty"` // FCM tokens registered for push.
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterDeviceToken adds an FCM token, dropping duplicates.
func (u *User) RegisterDeviceToken(token string) {
	if token == "" {
		return
	}
	for _, existing := range u.DeviceTokens {
		if existing == token {
			return
		}
	}
	u.DeviceTokens = append(u.DeviceTokens, token)
}

// RemoveDeviceToken forgets an FCM token, typically after the push provider
// reports it invalid.
func (u *User) RemoveDeviceToken(token string) {
	kept := u.DeviceTokens[:0]
	for _, existing := range u.DeviceTokens {
		if existing != token {
			kept = append(kept, existing)
		}
	}
	u.DeviceTokens = kept
}
