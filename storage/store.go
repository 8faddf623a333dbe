// Package storage is the client's durable key-value store. The only entry
// written in practice is the bearer token under TokenKey.
package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const TokenKey = "token"

// TokenStore persists the raw bearer token between runs
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Entry is one persisted key-value pair
type Entry struct {
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "client_storage" }

// GormStore keeps entries in the SQLite database opened by config.InitStore
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the value for key and whether it was present
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	err := s.db.WithContext(ctx).First(&e, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Entry{Name: key, Value: value}).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{}, "name = ?", key).Error
}

func (s *GormStore) Token(ctx context.Context) (string, error) {
	v, _, err := s.Get(ctx, TokenKey)
	return v, err
}

func (s *GormStore) SetToken(ctx context.Context, token string) error {
	return s.Set(ctx, TokenKey, token)
}

func (s *GormStore) ClearToken(ctx context.Context) error {
	return s.Delete(ctx, TokenKey)
}

// MemoryStore is a TokenStore that forgets everything on exit
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) ClearToken(context.Context) error {
	return m.SetToken(context.Background(), "")
}
