package prefs

import (
	"context"
	"errors"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preference is a single persisted key/value record. The value column is a
// JSON document so the database can index and inspect it when needed.
type Preference struct {
	Key       string         `gorm:"primaryKey;size:255"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"not null;default:current_timestamp;autoUpdateTime"`
}

// TableName specifies the table name for the Preference model
func (Preference) TableName() string {
	return "preferences"
}

// GormStore persists preferences in Postgres through GORM.
type GormStore struct {
	db *connection.Database
}

func NewGormStore(db *connection.Database) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var pref Preference
	result := s.db.WithContext(ctx).First(&pref, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, result.Error
	}
	return string(pref.Value), true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	pref := Preference{
		Key:   key,
		Value: datatypes.JSON(value),
	}
	// Upsert keeps last-write-wins semantics across concurrent writers.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Preference{}, "key = ?", key).Error
}
