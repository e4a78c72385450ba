package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/musemart/musemart-backend/pkg/db"
	"github.com/musemart/musemart-backend/pkg/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRecord is the single-row table standing in for the browser's
// local storage: one key, one serialized user snapshot.
type SessionRecord struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Payload   string    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the storage table.
func (SessionRecord) TableName() string {
	return "session_records"
}

// SQLiteStore keeps the session record in the local sqlite file.
type SQLiteStore struct {
	conn *gorm.DB
	key  string
}

// NewSQLiteStore migrates the session table and returns the store.
func NewSQLiteStore(client *db.Client, key string) (*SQLiteStore, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	if key == "" {
		return nil, fmt.Errorf("session key is required")
	}
	if err := client.DB().AutoMigrate(&SessionRecord{}); err != nil {
		return nil, fmt.Errorf("migrating session table: %w", err)
	}
	return &SQLiteStore{conn: client.DB(), key: key}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializing session record: %w", err)
	}
	record := SessionRecord{Key: s.key, Payload: string(payload)}
	return s.conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
}

func (s *SQLiteStore) Load(ctx context.Context) (*domain.User, error) {
	var record SessionRecord
	err := s.conn.WithContext(ctx).First(&record, "key = ?", s.key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(record.Payload), &user); err != nil {
		return nil, fmt.Errorf("parsing session record: %w", err)
	}
	return &user, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.conn.WithContext(ctx).
		Delete(&SessionRecord{}, "key = ?", s.key).Error
}
