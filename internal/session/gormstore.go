package session

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRecord struct {
	Token  string    `gorm:"primaryKey;size:64"`
	Data   []byte    `gorm:"not null"`
	Expiry time.Time `gorm:"not null;index"`
}

func (sessionRecord) TableName() string { return "sessions" }

// GormStore implements scs.Store on top of a gorm database.
type GormStore struct {
	db          *gorm.DB
	stopCleanup chan struct{}
}

// NewGormStore migrates the sessions table and, when interval is positive, starts a
// goroutine deleting expired rows.
func NewGormStore(db *gorm.DB, interval time.Duration) (*GormStore, error) {
	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate sessions table: %w", err)
	}
	s := &GormStore{db: db}
	if interval > 0 {
		s.stopCleanup = make(chan struct{})
		go startCleanup(s, interval, s.stopCleanup)
	}
	return s, nil
}

// Find returns the data for an unexpired session token.
func (s *GormStore) Find(token string) ([]byte, bool, error) {
	var rec sessionRecord
	err := s.db.Where("token = ? AND expiry > ?", token, time.Now().UTC()).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Data, true, nil
}

// Commit upserts the session data.
func (s *GormStore) Commit(token string, b []byte, expiry time.Time) error {
	rec := sessionRecord{Token: token, Data: b, Expiry: expiry.UTC()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expiry"}),
	}).Create(&rec).Error
}

// Delete removes a session token.
func (s *GormStore) Delete(token string) error {
	return s.db.Where("token = ?", token).Delete(&sessionRecord{}).Error
}

// DeleteExpired removes every expired session.
func (s *GormStore) DeleteExpired() error {
	return s.db.Where("expiry < ?", time.Now().UTC()).Delete(&sessionRecord{}).Error
}

// StopCleanup terminates the background cleanup goroutine.
func (s *GormStore) StopCleanup() {
	if s.stopCleanup != nil {
		close(s.stopCleanup)
		s.stopCleanup = nil
	}
}

func startCleanup(s *GormStore, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = s.DeleteExpired()
		case <-stop:
			return
		}
	}
}
