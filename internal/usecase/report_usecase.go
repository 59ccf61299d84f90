package usecase

import (
	"context"
	"time"

	"timesheet/internal/domain/service"

	"github.com/google/uuid"
)

// ReportInput carries raw report parameters as received from the caller.
// Nil ID pointers mean "all". StartDate and EndDate are required.
type ReportInput struct {
	StartDate    time.Time
	EndDate      time.Time
	TeamMemberID *uuid.UUID
	ClientID     *uuid.UUID
	ProjectID    *uuid.UUID
	CategoryID   *uuid.UUID
}

// ReportUsecase validates report parameters and delegates row production to
// the configured report source.
type ReportUsecase interface {
	GetReport(ctx context.Context, input ReportInput) (*service.Report, error)
}
