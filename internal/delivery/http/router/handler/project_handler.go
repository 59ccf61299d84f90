package handler

import (
	"log/slog"
	"net/http"

	"timesheet/internal/delivery/http/response"
	"timesheet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type projectRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	CustomerID  uuid.UUID `json:"customerId" validate:"required"`
	LeadID      uuid.UUID `json:"leadId" validate:"required"`
	Status      string    `json:"status"`
}

// ProjectHandler holds dependencies for project handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "")
}

// List returns one page of projects. When the status query parameter is set,
// only projects carrying that status label are returned.
func (h *ProjectHandler) List(c echo.Context) error {
	input, err := parseListInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	var page any
	if status := c.QueryParam("status"); status != "" {
		page, err = h.uc.ListByStatus(ctx, status, input)
	} else {
		page, err = h.uc.List(ctx, input)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.Create(c.Request().Context(), usecase.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		LeadID:      req.LeadID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created successfully")
}

func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.Update(c.Request().Context(), usecase.ProjectInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		LeadID:      req.LeadID,
		Status:      req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project updated successfully")
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Project deleted successfully")
}
