package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"manuscrito/models"
)

// ErrAccountNotFound is returned when no directory entry matches.
var ErrAccountNotFound = errors.New("account not found")

// ErrLoginAccount is returned when a roster import targets the email of a login account.
var ErrLoginAccount = errors.New("email belongs to a login account")

// Directory looks up seeded accounts and lists the learner roster.
type Directory struct {
	db *gorm.DB
}

// NewDirectory wraps db.
func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// FindByEmail returns the login account whose email matches exactly. Roster learners
// are display data and never match.
func (d *Directory) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	if d == nil || d.db == nil {
		return models.Account{}, gorm.ErrInvalidDB
	}
	var account models.Account
	err := d.db.WithContext(ctx).Where("email = ? AND roster = ?", email, false).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("find account: %w", err)
	}
	return account, nil
}

// Roster lists mock learners ordered by join date.
func (d *Directory) Roster(ctx context.Context) ([]models.Account, error) {
	if d == nil || d.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	var accounts []models.Account
	if err := d.db.WithContext(ctx).Where("roster = ?", true).Order("joined_at asc").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return accounts, nil
}

// UpsertRosterAccount creates or updates a roster learner keyed by email.
func (d *Directory) UpsertRosterAccount(ctx context.Context, account models.Account) (models.Account, bool, error) {
	if d == nil || d.db == nil {
		return models.Account{}, false, gorm.ErrInvalidDB
	}
	account.Roster = true
	account.IsAdmin = false

	var existing models.Account
	err := d.db.WithContext(ctx).Where("email = ?", account.Email).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if account.ExternalID == "" {
			account.ExternalID = uuid.NewString()
		}
		if err := d.db.WithContext(ctx).Create(&account).Error; err != nil {
			return models.Account{}, false, fmt.Errorf("create roster account %s: %w", account.Email, err)
		}
		return account, true, nil
	case err != nil:
		return models.Account{}, false, fmt.Errorf("find roster account %s: %w", account.Email, err)
	case !existing.Roster:
		return models.Account{}, false, fmt.Errorf("%w: %s", ErrLoginAccount, account.Email)
	}

	updates := map[string]any{
		"name":                account.Name,
		"progress_percentage": account.ProgressPercentage,
		"last_unlocked_day":   account.LastUnlockedDay,
		"joined_at":           account.JoinedAt,
		"roster":              true,
	}
	if err := d.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return models.Account{}, false, fmt.Errorf("update roster account %s: %w", account.Email, err)
	}
	if err := d.db.WithContext(ctx).First(&existing, existing.ID).Error; err != nil {
		return models.Account{}, false, fmt.Errorf("reload roster account %s: %w", account.Email, err)
	}
	return existing, false, nil
}
