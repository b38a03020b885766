package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// record is the row shape of the key/value table. Each collection stays a
// single JSON blob, so the whole-value read/write discipline is identical
// to the other drivers; the SQL engine only contributes durability.
type record struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value []byte `gorm:"type:blob"`
}

func (record) TableName() string { return "terraquest_records" }

// SQLStore persists collections in a relational database through GORM.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore auto-migrates the records table on the given connection.
func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("store: migrate records table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(key string, dest any) (bool, error) {
	var rec record
	err := s.db.First(&rec, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("store: sql get %s: %w", key, err)
	}

	if err := json.Unmarshal(rec.Value, dest); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *SQLStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}

	err = s.db.Save(&record{Key: key, Value: raw}).Error
	if err != nil {
		return fmt.Errorf("store: sql set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(key string) error {
	if err := s.db.Delete(&record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("store: sql del %s: %w", key, err)
	}
	return nil
}
