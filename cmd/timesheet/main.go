package main

import (
	"context"
	"log/slog"
	"os"

	"timesheet/config"
	"timesheet/internal/delivery"
	"timesheet/internal/delivery/http"
	"timesheet/internal/delivery/http/middleware"
	"timesheet/internal/delivery/http/router/handler"
	"timesheet/internal/infra/auth"
	logs "timesheet/internal/infra/log"
	"timesheet/internal/infra/persistence/postgres"
	"timesheet/internal/infra/report"
	"timesheet/internal/usecase/impl"

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
			postgres.NewTeamMemberRepository,
			postgres.NewClientRepository,
			postgres.NewProjectRepository,
			postgres.NewCategoryRepository,
			postgres.NewActivityRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewHMACHasher,
			auth.NewJWTService,
			report.NewActivityReportSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewTeamMemberService,
			impl.NewClientService,
			impl.NewProjectService,
			impl.NewCategoryService,
			impl.NewActivityService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewTeamMemberHandler,
			handler.NewClientHandler,
			handler.NewProjectHandler,
			handler.NewCategoryHandler,
			handler.NewActivityHandler,
			handler.NewReportHandler,
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
