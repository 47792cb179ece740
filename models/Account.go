package models

import (
	"time"

	"gorm.io/gorm"
)

// Account is a directory entry for a seeded identity. Rows flagged as Roster are the
// mock learners listed in the admin panel.
type Account struct {
	gorm.Model
	ExternalID         string    `gorm:"uniqueIndex;not null" json:"external_id"`
	Name               string    `gorm:"not null" json:"name"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	IsAdmin            bool      `gorm:"not null;default:false" json:"is_admin"`
	ProgressPercentage int       `gorm:"not null;default:0" json:"progress_percentage"`
	LastUnlockedDay    int       `gorm:"not null;default:1" json:"last_unlocked_day"`
	PasswordHash       string    `json:"-"`
	JoinedAt           time.Time `json:"joined_at"`
	Roster             bool      `gorm:"not null;default:false;index" json:"roster"`
}

// User converts the directory row into a session user snapshot.
func (a Account) User() User {
	return User{
		ID:                 a.ExternalID,
		Name:               a.Name,
		Email:              a.Email,
		IsAdmin:            a.IsAdmin,
		ProgressPercentage: a.ProgressPercentage,
		LastUnlockedDay:    a.LastUnlockedDay,
		CreatedAt:          a.JoinedAt.UTC(),
	}
}
