package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReportQuery carries already-validated report parameters. Nil ID pointers
// mean "all".
type ReportQuery struct {
	StartDate    time.Time
	EndDate      time.Time
	TeamMemberID *uuid.UUID
	ClientID     *uuid.UUID
	ProjectID    *uuid.UUID
	CategoryID   *uuid.UUID
}

// ReportRow is one aggregated line of a report.
type ReportRow struct {
	Date       time.Time `json:"date"`
	TeamMember string    `json:"teamMember"`
	Client     string    `json:"client"`
	Project    string    `json:"project"`
	Category   string    `json:"category"`
	Hours      float64   `json:"hours"`
	Overtime   float64   `json:"overtime"`
}

// Report is the materialized result set for one query.
type Report struct {
	Rows       []ReportRow `json:"rows"`
	TotalHours float64     `json:"totalHours"`
}

// ReportSource is the external report collaborator: it consumes validated
// query parameters and returns report rows. Content aggregation and document
// rendering live behind this boundary, outside the core.
type ReportSource interface {
	GetReport(ctx context.Context, query ReportQuery) (*Report, error)
}
