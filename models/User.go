package models

import "time"

// User is the identity and progress snapshot held by a browser session.
// Field names in JSON match the persisted session slot and must not change.
type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	IsAdmin            bool      `json:"isAdmin"`
	ProgressPercentage int       `json:"progressPercentage"`
	LastUnlockedDay    int       `json:"lastUnlockedDay"`
	CreatedAt          time.Time `json:"createdAt"`
}

// FirstName returns the first word of the display name, falling back to the email local part.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	if u.Name != "" {
		return u.Name
	}
	for i, r := range u.Email {
		if r == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}
