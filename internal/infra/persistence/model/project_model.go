package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null"`
	Customer    ClientModel
	LeadID      uuid.UUID `gorm:"type:uuid;not null"`
	Lead        TeamMemberModel
	StatusID    uuid.UUID `gorm:"type:uuid"`
	Status      StatusModel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
