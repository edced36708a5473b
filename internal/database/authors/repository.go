// Package authors provides database operations for author management.
//
// # Interface Implementation
//
//	var _ http.AuthorStore = (*Repository)(nil)
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.GetByName("Machado de Assis")
package authors

import (
	"gorm.io/gorm"

	"github.com/rmaia/biblioteca/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves all authors ordered by id.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("id ASC").Find(&authors).Error
	return authors, err
}

// GetByID retrieves an author by id.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// GetByName retrieves an author by exact name. Duplicate names resolve
// deterministically to the lowest id.
func (r *Repository) GetByName(name string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Where("name = ?", name).Order("id ASC").First(&author).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// UpdateName renames the author identified by id. Names are not required to
// be unique or non-empty.
func (r *Repository) UpdateName(id uint, name string) error {
	result := r.db.Model(&entities.Author{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
