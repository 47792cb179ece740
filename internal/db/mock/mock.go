package mock

import (
	"context"
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"manuscrito/internal/db"
	applog "manuscrito/internal/log"
)

var instances atomic.Int64

// New returns an in-memory sqlite database holding the seeded administrator and
// learner roster. Each call gets its own database.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	cfg := db.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	dsn := fmt.Sprintf("file:manuscrito-mock-%d?mode=memory&cache=shared", instances.Add(1))
	database, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}

	if err := db.Seed(database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}
