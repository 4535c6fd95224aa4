package main

import (
	"context"
	"log/slog"
	"os"

	"vendir/config"
	"vendir/internal/delivery"
	"vendir/internal/delivery/http"
	"vendir/internal/delivery/http/middleware"
	"vendir/internal/delivery/http/router/handler"
	"vendir/internal/domain/service"
	"vendir/internal/infra/auth"
	logs "vendir/internal/infra/log"
	"vendir/internal/infra/mail"
	"vendir/internal/infra/persistence/postgres"
	"vendir/internal/infra/qrcode"
	"vendir/internal/infra/storage"
	"vendir/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewVendorRepository,
			postgres.NewGalleryRepository,
			postgres.NewInquiryRepository,
			postgres.NewReviewRepository,
			postgres.NewMasterRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			storage.New,
			newMailer,
		),
	)
}

// newMailer sends real mail when SMTP is configured and logs notifications
// otherwise, so local runs never need a relay.
func newMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return mail.NewLogMailer(logger), nil
	}

	return mail.NewSMTPMailer(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDirectoryService,
			impl.NewVendorService,
			impl.NewGalleryService,
			impl.NewInquiryService,
			impl.NewReviewService,
			impl.NewAdminService,
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
			handler.NewAuthHandler,
			handler.NewDirectoryHandler,
			handler.NewVendorHandler,
			handler.NewGalleryHandler,
			handler.NewInquiryHandler,
			handler.NewReviewHandler,
			handler.NewAdminHandler,
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
