// Package report builds aggregated activity reports on top of the
// persistence layer. It sits behind the domain's ReportSource boundary so
// the usecases stay free of query mechanics.
package report

import (
	"context"

	"timesheet/internal/domain/repository"
	"timesheet/internal/domain/service"
)

// activityReportSource materializes reports from the activity repository.
type activityReportSource struct {
	activities repository.ActivityRepository
}

// NewActivityReportSource is the constructor for activityReportSource.
func NewActivityReportSource(activities repository.ActivityRepository) service.ReportSource {
	return &activityReportSource{activities: activities}
}

// GetReport fetches activities matching the query and aggregates them into
// report rows. Rows come back ordered by date then ID, mirroring the
// repository's ordering.
func (s *activityReportSource) GetReport(ctx context.Context, query service.ReportQuery) (*service.Report, error) {
	filter := repository.ActivityFilter{
		From: query.StartDate,
		To:   query.EndDate,
	}
	if query.TeamMemberID != nil {
		filter.TeamMemberID = *query.TeamMemberID
	}
	if query.ClientID != nil {
		filter.ClientID = *query.ClientID
	}
	if query.ProjectID != nil {
		filter.ProjectID = *query.ProjectID
	}
	if query.CategoryID != nil {
		filter.CategoryID = *query.CategoryID
	}

	activities, err := s.activities.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &service.Report{
		Rows: make([]service.ReportRow, 0, len(activities)),
	}
	for _, activity := range activities {
		row := service.ReportRow{
			Date:     activity.Date,
			Hours:    activity.Hours,
			Overtime: activity.Overtime,
		}
		if activity.TeamMember != nil {
			row.TeamMember = activity.TeamMember.Name
		}
		if activity.Client != nil {
			row.Client = activity.Client.Name
		}
		if activity.Project != nil {
			row.Project = activity.Project.Name
		}
		if activity.Category != nil {
			row.Category = activity.Category.Name
		}

		report.Rows = append(report.Rows, row)
		report.TotalHours += activity.Hours + activity.Overtime
	}

	return report, nil
}
