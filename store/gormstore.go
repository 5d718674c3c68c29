package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fincore/models"
)

// GormStore persists each key as one row of the store_entries table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, error) {
	var entry models.StoreEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (s *GormStore) Set(key, value string) error {
	entry := models.StoreEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error
}

func (s *GormStore) Remove(key string) error {
	return s.db.Delete(&models.StoreEntry{}, "key = ?", key).Error
}
