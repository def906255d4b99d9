// Package service defines interfaces for infrastructure-facing services the
// use case layer depends on.
package service

import (
	"context"
)

// Notifier defines the interface for push notification delivery. A no-op
// implementation must be substitutable with no change to lifecycle behavior;
// delivery failure never affects order processing.
type Notifier interface {
	// SendNotification sends a push notification to a single device token.
	SendNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends push notifications to multiple device
	// tokens. Returns success count, failure count and the tokens the
	// provider reported invalid or unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
