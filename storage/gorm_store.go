package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// KVRecord is one persisted key/value row.
type KVRecord struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GormStore persists key/value records through a GORM connection, so the
// storefront state lives in the same database as the user accounts.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var rec KVRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(rec.Value), true, nil
}

func (s *GormStore) Set(key string, value []byte) error {
	tx := s.db.Model(&KVRecord{}).Where("key = ?", key).
		Updates(map[string]interface{}{"value": string(value), "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return s.db.Create(&KVRecord{Key: key, Value: string(value), UpdatedAt: time.Now()}).Error
	}
	return nil
}
