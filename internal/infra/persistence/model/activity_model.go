package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table.
type ActivityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamMemberID uuid.UUID `gorm:"type:uuid;not null;index"`
	TeamMember   TeamMemberModel
	ClientID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Client       ClientModel
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Project      ProjectModel
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Category     CategoryModel
	Date         time.Time `gorm:"not null;index"`
	Hours        float64   `gorm:"not null"`
	Overtime     float64
	Description  string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
