package report

import (
	"context"
	"testing"
	"time"

	"timesheet/internal/domain/entity"
	"timesheet/internal/domain/repository"
	"timesheet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeActivityRepo serves a fixed slice and records the filter it was asked for.
type fakeActivityRepo struct {
	repository.ActivityRepository

	activities []*entity.Activity
	gotFilter  repository.ActivityFilter
}

func (f *fakeActivityRepo) GetAll(_ context.Context, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	f.gotFilter = filter
	return f.activities, nil
}

func TestActivityReportSource_GetReport(t *testing.T) {
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	repo := &fakeActivityRepo{
		activities: []*entity.Activity{
			{
				Date:       day,
				Hours:      7.5,
				Overtime:   0.5,
				TeamMember: &entity.TeamMember{Name: "Ada Lovelace"},
				Client:     &entity.Client{Name: "Acme"},
				Project:    &entity.Project{Name: "Website"},
				Category:   &entity.Category{Name: "Development"},
			},
			{
				Date:  day.AddDate(0, 0, 1),
				Hours: 4,
				// Reference rows may be missing on partially loaded records.
			},
		},
	}
	source := NewActivityReportSource(repo)

	report, err := source.GetReport(context.Background(), service.ReportQuery{
		StartDate: day,
		EndDate:   day.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Ada Lovelace", report.Rows[0].TeamMember)
	assert.Equal(t, "Acme", report.Rows[0].Client)
	assert.Equal(t, "Website", report.Rows[0].Project)
	assert.Equal(t, "Development", report.Rows[0].Category)
	assert.Empty(t, report.Rows[1].TeamMember)
	assert.InDelta(t, 12.0, report.TotalHours, 1e-9)
}

func TestActivityReportSource_GetReport_MapsQueryToFilter(t *testing.T) {
	memberID := uuid.New()
	projectID := uuid.New()
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	repo := &fakeActivityRepo{}
	source := NewActivityReportSource(repo)

	_, err := source.GetReport(context.Background(), service.ReportQuery{
		TeamMemberID: &memberID,
		ProjectID:    &projectID,
		StartDate:    from,
		EndDate:      to,
	})
	require.NoError(t, err)

	assert.Equal(t, memberID, repo.gotFilter.TeamMemberID)
	assert.Equal(t, projectID, repo.gotFilter.ProjectID)
	assert.Equal(t, uuid.Nil, repo.gotFilter.ClientID)
	assert.Equal(t, uuid.Nil, repo.gotFilter.CategoryID)
	assert.Equal(t, from, repo.gotFilter.From)
	assert.Equal(t, to, repo.gotFilter.To)
}
