// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"time"

	domainerrors "timesheet/internal/domain/errors"
	"timesheet/internal/domain/pagination"
	"timesheet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam reads the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}

// parseListInput reads the shared listing query parameters. Omitted page
// parameters fall back to the first page and the default page size; anything
// explicitly non-positive is passed through for the paginator to reject.
func parseListInput(c echo.Context) (usecase.ListInput, error) {
	input := usecase.ListInput{
		FirstLetter: c.QueryParam("firstLetter"),
		SearchText:  c.QueryParam("search"),
		PageNumber:  1,
		PageSize:    pagination.DefaultPageSize,
	}

	var err error
	if input.PageNumber, err = parseIntParam(c, "pageNumber", 1); err != nil {
		return input, err
	}
	if input.PageSize, err = parseIntParam(c, "pageSize", pagination.DefaultPageSize); err != nil {
		return input, err
	}

	return input, nil
}

func parseIntParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return value, nil
}

// parseOptionalUUIDParam reads an optional query parameter as a UUID pointer.
func parseOptionalUUIDParam(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return &id, nil
}

// parseDateParam reads a query parameter in YYYY-MM-DD form. A zero time is
// returned when the parameter is absent.
func parseDateParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(name + " must be a date in YYYY-MM-DD form")
	}

	return date, nil
}
