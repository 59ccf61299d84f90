package handler

import (
	"log/slog"
	"net/http"

	"timesheet/internal/delivery/http/response"
	domainerrors "timesheet/internal/domain/errors"
	"timesheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for report handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get builds an activity report for a date range, optionally narrowed to one
// member, client, project or category.
func (h *ReportHandler) Get(c echo.Context) error {
	input := usecase.ReportInput{}

	var err error
	if input.StartDate, err = parseDateParam(c, "startDate"); err != nil {
		return errors.WithStack(err)
	}
	if input.EndDate, err = parseDateParam(c, "endDate"); err != nil {
		return errors.WithStack(err)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return errors.WithStack(domainerrors.ErrInvalidReportQuery.WithDetails("startDate and endDate are required"))
	}

	if input.TeamMemberID, err = parseOptionalUUIDParam(c, "teamMemberId"); err != nil {
		return errors.WithStack(err)
	}
	if input.ClientID, err = parseOptionalUUIDParam(c, "clientId"); err != nil {
		return errors.WithStack(err)
	}
	if input.ProjectID, err = parseOptionalUUIDParam(c, "projectId"); err != nil {
		return errors.WithStack(err)
	}
	if input.CategoryID, err = parseOptionalUUIDParam(c, "categoryId"); err != nil {
		return errors.WithStack(err)
	}

	report, err := h.uc.GetReport(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}
