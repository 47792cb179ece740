package db

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	applog "manuscrito/internal/log"
	"manuscrito/models"
)

// AdminEmail and AdminPassword identify the seeded administrator. The password only
// matters when credential verification is enabled.
const (
	AdminEmail    = "admin@manuscrito.com"
	AdminPassword = "manuscrito"
)

func seedAccounts() []models.Account {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	return []models.Account{
		{ExternalID: "1", Name: "Admin", Email: AdminEmail, IsAdmin: true, ProgressPercentage: 100, LastUnlockedDay: 12, JoinedAt: day(2025, time.January, 1)},
		{ExternalID: "roster-maria", Name: "María García", Email: "maria@email.com", ProgressPercentage: 75, LastUnlockedDay: 9, JoinedAt: day(2025, time.December, 1), Roster: true},
		{ExternalID: "roster-carlos", Name: "Carlos López", Email: "carlos@email.com", ProgressPercentage: 33, LastUnlockedDay: 4, JoinedAt: day(2025, time.December, 5), Roster: true},
		{ExternalID: "roster-ana", Name: "Ana Rodríguez", Email: "ana@email.com", ProgressPercentage: 8, LastUnlockedDay: 1, JoinedAt: day(2025, time.December, 10), Roster: true},
		{ExternalID: "roster-luis", Name: "Luis Martínez", Email: "luis@email.com", ProgressPercentage: 100, LastUnlockedDay: 12, JoinedAt: day(2025, time.November, 15), Roster: true},
	}
}

// Seed inserts the administrator and the mock learner roster. Existing rows are kept.
func Seed(db *gorm.DB) error {
	ctx := context.Background()
	applog.Debug(ctx, "seeding accounts")

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	for _, account := range seedAccounts() {
		account := account
		if account.IsAdmin {
			account.PasswordHash = string(hash)
		}
		if err := db.WithContext(ctx).
			Where(models.Account{Email: account.Email}).
			Attrs(account).
			FirstOrCreate(&account).Error; err != nil {
			return fmt.Errorf("seed account %s: %w", account.Email, err)
		}
	}

	applog.Debug(ctx, "accounts seeded")
	return nil
}
