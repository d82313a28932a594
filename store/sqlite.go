package store

import (
	"context"
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"empregoja-backend/models"
)

// SQLite persists the ledger in a local database file so payment records
// survive restarts. Enabled by pointing LEDGER_DB at a file path.
type SQLite struct {
	db *gorm.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Payment{}); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Create(ctx context.Context, p *models.Payment) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *SQLite) Get(ctx context.Context, id string) (models.Payment, error) {
	var p models.Payment
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Payment{}, ErrNotFound
	}
	return p, err
}

func (s *SQLite) Update(ctx context.Context, id string, fn func(*models.Payment) error) (models.Payment, error) {
	var out models.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Payment
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := fn(&p); err != nil {
			return err
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

func (s *SQLite) List(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&out).Error
	return out, err
}
