// Package categories provides read-only database operations for categories.
// Categories are created by seeding only and are never edited or deleted.
package categories

import (
	"gorm.io/gorm"

	"github.com/rmaia/biblioteca/internal/entities"
)

// Repository handles category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves all categories ordered by id.
func (r *Repository) GetAll() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

// GetByID retrieves a category by id.
func (r *Repository) GetByID(id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName retrieves a category by exact name. Duplicate names resolve
// deterministically to the lowest id.
func (r *Repository) GetByName(name string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Where("name = ?", name).Order("id ASC").First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
