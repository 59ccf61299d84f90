package handler

import (
	"log/slog"
	"net/http"

	"timesheet/internal/delivery/http/response"
	"timesheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type updateMemberRequest struct {
	Name         string  `json:"name" validate:"required"`
	Role         string  `json:"role" validate:"required"`
	Status       string  `json:"status" validate:"required"`
	HoursPerWeek float64 `json:"hoursPerWeek" validate:"gte=0"`
}

// TeamMemberHandler holds dependencies for member directory handlers.
type TeamMemberHandler struct {
	uc     usecase.TeamMemberUsecase
	logger *slog.Logger
}

// NewTeamMemberHandler is the constructor for TeamMemberHandler, injected by Fx.
func NewTeamMemberHandler(uc usecase.TeamMemberUsecase, logger *slog.Logger) *TeamMemberHandler {
	return &TeamMemberHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns a single member by ID.
func (h *TeamMemberHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	member, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, member, "")
}

// List returns one page of the member directory.
func (h *TeamMemberHandler) List(c echo.Context) error {
	input, err := parseListInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Update modifies a member's mutable fields.
func (h *TeamMemberHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	member, err := h.uc.Update(c.Request().Context(), usecase.UpdateMemberInput{
		ID:           id,
		Name:         req.Name,
		Role:         req.Role,
		Status:       req.Status,
		HoursPerWeek: req.HoursPerWeek,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, member, "Member updated successfully")
}

// Delete removes a member.
func (h *TeamMemberHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Member deleted successfully")
}
