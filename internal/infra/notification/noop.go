package notification

import (
	"context"
	"log/slog"

	"drogo/config"
	"drogo/internal/domain/service"
)

// noopService satisfies the Notifier interface without sending anything.
// Used when Firebase is not configured so the rest of the system never has
// to care whether push delivery is available.
type noopService struct{}

func (noopService) SendNotification(context.Context, string, string, string, map[string]string) error {
	return nil
}

func (noopService) SendBatchNotification(_ context.Context, tokens []string, _, _ string, _ map[string]string) (int, int, []string, error) {
	return len(tokens), 0, nil, nil
}

// NewNotifier selects the notification backend from configuration. A missing
// Firebase block disables push delivery rather than failing startup.
func NewNotifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Notifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Info("firebase not configured, push notifications disabled")

		return noopService{}, nil
	}

	notifier, err := NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, err
	}

	logger.Info("firebase messaging initialized", slog.String("projectId", cfg.Firebase.ProjectID))

	return notifier, nil
}
