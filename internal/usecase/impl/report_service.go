package impl

import (
	"context"
	"log/slog"

	deliverycontext "timesheet/internal/delivery/context"
	domainerrors "timesheet/internal/domain/errors"
	"timesheet/internal/domain/service"
	"timesheet/internal/errors"
	"timesheet/internal/usecase"

	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	source service.ReportSource
	logger *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	Source service.ReportSource
	Logger *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		source: params.Source,
		logger: params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetReport validates the raw query parameters and delegates row production
// to the report source.
func (srv *reportService) GetReport(ctx context.Context, input usecase.ReportInput) (*service.Report, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, domainerrors.ErrInvalidReportQuery.WithDetails("start and end dates are required")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerrors.ErrInvalidReportQuery.WithDetails("end date precedes start date")
	}

	report, err := srv.source.GetReport(ctx, service.ReportQuery{
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		TeamMemberID: input.TeamMemberID,
		ClientID:     input.ClientID,
		ProjectID:    input.ProjectID,
		CategoryID:   input.CategoryID,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to build report", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build report")
	}

	return report, nil
}
