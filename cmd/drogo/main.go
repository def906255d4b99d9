package main

import (
	"context"
	"log/slog"
	"os"

	"drogo/config"
	"drogo/internal/catalog"
	"drogo/internal/delivery"
	"drogo/internal/delivery/http"
	"drogo/internal/delivery/http/middleware"
	"drogo/internal/delivery/http/router/handler"
	"drogo/internal/domain/service"
	"drogo/internal/infra/auth"
	logs "drogo/internal/infra/log"
	"drogo/internal/infra/notification"
	"drogo/internal/infra/persistence"
	"drogo/internal/infra/pubsub"
	"drogo/internal/infra/qrcode"
	"drogo/internal/notify"
	"drogo/internal/scheduler"
	"drogo/internal/usecase"
	"drogo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		catalog.New,
		persistence.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewNotifier,
			newQRCodeService,
			newFulfillment,
			notify.NewDispatcher,
			newStatusObservers,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newFulfillment creates the order progression scheduler and stops its timer
// goroutines on shutdown.
func newFulfillment(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *scheduler.Fulfillment {
	fulfillment := scheduler.New(cfg.Fulfillment, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			fulfillment.Stop()

			return nil
		},
	})

	return fulfillment
}

// newStatusObservers collects the observers notified after each persisted
// status change.
func newStatusObservers(dispatcher *notify.Dispatcher) []usecase.StatusObserver {
	return []usecase.StatusObserver{dispatcher}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewLocationService,
			impl.NewOrderService,
			impl.NewAdminService,
			impl.NewWaitlistService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewLocationHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
			handler.NewWaitlistHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
