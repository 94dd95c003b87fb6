// internal/infrastructure/database/postgres/store.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oncloth/storefront/internal/infrastructure/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageEntry is one key-value slot
type StorageEntry struct {
	Key       string     `gorm:"primaryKey;size:255"`
	Value     string     `gorm:"type:text;not null"`
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (StorageEntry) TableName() string {
	return "storage_entries"
}

// Store persists storefront slots in Postgres
type Store struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewStore creates a gorm-backed store. A zero ttl keeps entries forever.
func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl, now: time.Now}
}

var _ storage.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var entry StorageEntry
	err := s.db.WithContext(ctx).
		Where("key = ? AND (expires_at IS NULL OR expires_at > ?)", key, s.now().UTC()).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	entry := StorageEntry{
		Key:   key,
		Value: string(value),
	}
	if s.ttl > 0 {
		expires := s.now().UTC().Add(s.ttl)
		entry.ExpiresAt = &expires
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&StorageEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// PurgeExpired removes entries whose TTL has passed
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", s.now().UTC()).
		Delete(&StorageEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
