package main

import (
	"context"
	"log/slog"
	"os"

	"shopdir/config"
	"shopdir/internal/delivery"
	"shopdir/internal/delivery/http"
	"shopdir/internal/delivery/http/middleware"
	"shopdir/internal/delivery/http/router/handler"
	"shopdir/internal/domain/service"
	"shopdir/internal/infra/asset"
	"shopdir/internal/infra/geocode"
	logs "shopdir/internal/infra/log"
	mongopersist "shopdir/internal/infra/persistence/mongo"
	"shopdir/internal/infra/qrcode"
	"shopdir/internal/usecase/impl"

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
		mongopersist.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongopersist.NewShopRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			asset.NewBucket,
			asset.NewPhotoStore,
			geocode.NewNominatimGeocoder,
			newQRCodeService,
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

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShopService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShopHandler,
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
