package handler

import (
	"log/slog"
	"net/http"
	"time"

	"timesheet/internal/delivery/http/response"
	"timesheet/internal/domain/pagination"
	"timesheet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type activityRequest struct {
	TeamMemberID uuid.UUID `json:"teamMemberId" validate:"required"`
	ClientID     uuid.UUID `json:"clientId" validate:"required"`
	ProjectID    uuid.UUID `json:"projectId" validate:"required"`
	CategoryID   uuid.UUID `json:"categoryId" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	Hours        float64   `json:"hours" validate:"gte=0"`
	Overtime     float64   `json:"overtime" validate:"gte=0"`
	Description  string    `json:"description"`
}

// ActivityHandler holds dependencies for activity handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *ActivityHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	activity, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "")
}

// List returns one page of activities, narrowed by the optional reference
// and date-range query parameters.
func (h *ActivityHandler) List(c echo.Context) error {
	input, err := h.parseActivityListInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

func (h *ActivityHandler) parseActivityListInput(c echo.Context) (usecase.ActivityListInput, error) {
	input := usecase.ActivityListInput{
		PageNumber: 1,
		PageSize:   pagination.DefaultPageSize,
	}

	var err error
	if input.PageNumber, err = parseIntParam(c, "pageNumber", 1); err != nil {
		return input, err
	}
	if input.PageSize, err = parseIntParam(c, "pageSize", pagination.DefaultPageSize); err != nil {
		return input, err
	}

	for name, target := range map[string]*uuid.UUID{
		"teamMemberId": &input.TeamMemberID,
		"clientId":     &input.ClientID,
		"projectId":    &input.ProjectID,
		"categoryId":   &input.CategoryID,
	} {
		id, err := parseOptionalUUIDParam(c, name)
		if err != nil {
			return input, err
		}
		if id != nil {
			*target = *id
		}
	}

	if input.From, err = parseDateParam(c, "from"); err != nil {
		return input, err
	}
	if input.To, err = parseDateParam(c, "to"); err != nil {
		return input, err
	}

	return input, nil
}

func (h *ActivityHandler) Create(c echo.Context) error {
	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	activity, err := h.uc.Create(c.Request().Context(), usecase.ActivityInput{
		TeamMemberID: req.TeamMemberID,
		ClientID:     req.ClientID,
		ProjectID:    req.ProjectID,
		CategoryID:   req.CategoryID,
		Date:         req.Date,
		Hours:        req.Hours,
		Overtime:     req.Overtime,
		Description:  req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, activity, "Activity recorded successfully")
}

func (h *ActivityHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	activity, err := h.uc.Update(c.Request().Context(), usecase.ActivityInput{
		ID:           id,
		TeamMemberID: req.TeamMemberID,
		ClientID:     req.ClientID,
		ProjectID:    req.ProjectID,
		CategoryID:   req.CategoryID,
		Date:         req.Date,
		Hours:        req.Hours,
		Overtime:     req.Overtime,
		Description:  req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "Activity updated successfully")
}

func (h *ActivityHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Activity deleted successfully")
}
