package main

import (
	"context"
	"log/slog"
	"os"

	"tarjeta/config"
	"tarjeta/internal/delivery"
	"tarjeta/internal/delivery/api"
	"tarjeta/internal/delivery/api/middleware"
	"tarjeta/internal/delivery/api/router/handler"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/infra/auth"
	"tarjeta/internal/infra/cache"
	"tarjeta/internal/infra/cardsource"
	"tarjeta/internal/infra/device"
	logs "tarjeta/internal/infra/log"
	"tarjeta/internal/infra/persistence/postgres"
	"tarjeta/internal/infra/pubsub"
	"tarjeta/internal/infra/qrcode"
	"tarjeta/internal/infra/telemetry"
	"tarjeta/internal/infra/vcard"
	"tarjeta/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRSize  = 256
	defaultQRLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		postgres.New,
		cache.NewRedis,
		telemetry.NewTracer,
		cardsource.New,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCardRepository,
			postgres.NewMessageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			vcard.NewVCardService,
			device.NewUserAgentDetector,
			newQRCodeService,
		),
	)
}

// newQRCodeService falls back to a 256px, medium-recovery code when unconfigured.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRSize, defaultQRLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCardViewService,
			impl.NewCardService,
			impl.NewLinkService,
			impl.NewAdminService,
			impl.NewMessageService,
			impl.NewPlanService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
			middleware.NewWebhookMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPublicHandler,
			handler.NewCardHandler,
			handler.NewLinkHandler,
			handler.NewAdminHandler,
			handler.NewMessageHandler,
			handler.NewWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
