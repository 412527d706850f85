// Package storage holds the two persistence adapters: a sqlite store for
// workshops and a line-based text file for participants. The two formats
// are independent on purpose; the participant file's literal layout is an
// external contract.
package storage

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devfest-vale/workshop-enrollment/internal/models"
)

type workshopRecord struct {
	Title    string `gorm:"primaryKey"`
	MaxSeats int
	// Enrolled is the comma-joined national ID list, preserving
	// enrollment order.
	Enrolled string
}

func (workshopRecord) TableName() string {
	return "workshops"
}

// WorkshopStore persists the workshop collection in sqlite.
type WorkshopStore struct {
	db *gorm.DB
}

// OpenWorkshopStore opens (or creates) the sqlite database at path and
// migrates the workshops table.
func OpenWorkshopStore(path string) (*WorkshopStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&workshopRecord{}); err != nil {
		return nil, err
	}

	return &WorkshopStore{db: db}, nil
}

// Load reads every persisted workshop. An empty table yields an empty
// map; the caller decides whether to fall back to the default set.
func (s *WorkshopStore) Load() (map[string]*models.Workshop, error) {
	var records []workshopRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, err
	}

	workshops := make(map[string]*models.Workshop, len(records))
	for _, rec := range records {
		w := models.NewWorkshop(rec.Title, rec.MaxSeats)
		if rec.Enrolled != "" {
			w.Enrolled = strings.Split(rec.Enrolled, ",")
		}
		workshops[rec.Title] = w
	}
	return workshops, nil
}

// Save replaces the persisted collection wholesale inside a transaction.
func (s *WorkshopStore) Save(workshops map[string]*models.Workshop) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&workshopRecord{}).Error; err != nil {
			return err
		}

		for _, w := range workshops {
			rec := workshopRecord{
				Title:    w.Title,
				MaxSeats: w.MaxSeats,
				Enrolled: strings.Join(w.Enrolled, ","),
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
