package postgres

import (
	"context"

	"timesheet/internal/domain/repository"
	"timesheet/internal/errors"
	"timesheet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applyNameFilter narrows a listing query by the optional prefix and
// substring conditions of the filter, applied to the given column.
// Matching is exact-case, same as the in-memory Filter.Matches.
func applyNameFilter(db *gorm.DB, filter repository.Filter, column string) *gorm.DB {
	if filter.FirstLetter != "" {
		db = db.Where(column+" LIKE ?", filter.FirstLetter+"%")
	}
	if filter.SearchText != "" {
		db = db.Where(column+" LIKE ?", "%"+filter.SearchText+"%")
	}

	return db
}

// resolveStatusID maps a status label to its reference row, creating the row
// on first use. The labels form a tiny closed set, so the table stays small.
func resolveStatusID(ctx context.Context, db *gorm.DB, name string) (uuid.UUID, error) {
	var statusM model.StatusModel
	err := db.WithContext(ctx).
		Where(model.StatusModel{Name: name}).
		FirstOrCreate(&statusM).Error
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "failed to resolve status %q", name)
	}

	return statusM.ID, nil
}
