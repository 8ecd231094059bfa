package main

import (
	"context"
	"log/slog"
	"os"

	"refuge/config"
	"refuge/internal/delivery"
	"refuge/internal/delivery/http"
	"refuge/internal/delivery/http/middleware"
	"refuge/internal/delivery/http/router/handler"
	"refuge/internal/infra/auth"
	"refuge/internal/infra/firebase"
	"refuge/internal/infra/kvstore"
	logs "refuge/internal/infra/log"
	"refuge/internal/infra/media"
	"refuge/internal/infra/notification"
	"refuge/internal/infra/persistence"
	"refuge/internal/infra/pubsub"
	"refuge/internal/infra/qrcode"
	"refuge/internal/usecase"
	"refuge/internal/usecase/impl"
	"refuge/internal/validator"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			closeSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		persistence.New,
		kvstore.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityProvider,
			media.NewImageEncoder,
			pubsub.NewEventPublisher,
			notification.NewNotificationService,
			qrcode.NewQRCodeServiceFromConfig,
			validator.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewFavoritesService,
			impl.NewCatalogService,
			impl.NewAdoptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewAdoptionHandler,
			handler.NewFavoritesHandler,
			handler.NewMediaHandler,
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

// closeSession stops following the identity provider on shutdown.
func closeSession(lc fx.Lifecycle, session usecase.SessionUsecase) {
	lc.Append(fx.StopHook(session.Close))
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
