package handler

import (
	"log/slog"
	"net/http"

	"timesheet/internal/delivery/http/response"
	"timesheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type clientRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ClientHandler holds dependencies for client directory handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *ClientHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	client, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "")
}

func (h *ClientHandler) List(c echo.Context) error {
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

func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	client, err := h.uc.Create(c.Request().Context(), usecase.ClientInput{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, client, "Client created successfully")
}

func (h *ClientHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	client, err := h.uc.Update(c.Request().Context(), usecase.ClientInput{
		ID:         id,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "Client updated successfully")
}

func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Client deleted successfully")
}
