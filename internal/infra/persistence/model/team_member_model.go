// Package model contains the GORM persistence models. They mirror the
// database schema and are mapped to and from pure domain entities by the
// repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusModel mirrors the 'statuses' table: a small reference table of
// human-readable state labels shared by team members and projects.
type StatusModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(50);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (StatusModel) TableName() string {
	return "statuses"
}

// TeamMemberModel mirrors the 'team_members' table. Username and email carry
// unique constraints; they are the storage-layer backstop for registration
// races. The named constraints are what the repository inspects to attribute
// a duplicate-key error to one column or the other.
type TeamMemberModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Username       string    `gorm:"type:varchar(100);uniqueIndex:uni_team_members_username;not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:uni_team_members_email;not null"`
	PasswordDigest []byte    `gorm:"type:bytea;not null"`
	PasswordSalt   []byte    `gorm:"type:bytea;not null"`
	Role           string    `gorm:"type:varchar(20);not null"`
	StatusID       uuid.UUID `gorm:"type:uuid"`
	Status         StatusModel
	HoursPerWeek   float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeamMemberModel) TableName() string {
	return "team_members"
}
