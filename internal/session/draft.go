package session

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"lokma/internal/models"
)

// Draft is the stored row: one JSON-encoded order per key.
type Draft struct {
	gorm.Model
	Key  string `gorm:"unique_index"`
	Body string `gorm:"type:text"`
}

// Store keeps unsubmitted orders in a local SQLite database so a kiosk
// restart mid-order does not lose the cart.
type Store struct {
	db *gorm.DB
}

// Open connects to the draft database and migrates the schema.
func Open(dbPath string) (*Store, error) {
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to draft database: %w", err)
	}
	if err := db.AutoMigrate(&Draft{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate draft schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes the order under the key, replacing any previous draft.
func (s *Store) Save(key string, order models.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	var draft Draft
	result := s.db.Where("key = ?", key).First(&draft)
	if result.RecordNotFound() {
		draft = Draft{Key: key, Body: string(body)}
		return s.db.Create(&draft).Error
	}
	if result.Error != nil {
		return result.Error
	}
	draft.Body = string(body)
	return s.db.Save(&draft).Error
}

// Load reads the order stored under the key. The second return value is
// false when no draft exists.
func (s *Store) Load(key string) (models.Order, bool, error) {
	var draft Draft
	result := s.db.Where("key = ?", key).First(&draft)
	if result.RecordNotFound() {
		return models.Order{}, false, nil
	}
	if result.Error != nil {
		return models.Order{}, false, result.Error
	}

	var order models.Order
	if err := json.Unmarshal([]byte(draft.Body), &order); err != nil {
		return models.Order{}, false, fmt.Errorf("failed to decode draft: %w", err)
	}
	return order, true, nil
}

// Delete removes the draft under the key. Deleting a missing draft is not an
// error.
func (s *Store) Delete(key string) error {
	return s.db.Unscoped().Where("key = ?", key).Delete(&Draft{}).Error
}
