// Package books provides database operations for book management.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
package books

import (
	"gorm.io/gorm"

	"github.com/rmaia/biblioteca/internal/entities"
)

// BookUpdate carries the mutable columns for an edit-flow save.
type BookUpdate struct {
	Title             string
	AuthorID          uint
	CategoryID        uint
	AvailableQuantity int
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll retrieves all books with their author and category, ordered by id.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Preload("Category").Order("id ASC").Find(&books).Error
	return books, err
}

// GetByID retrieves a book by id with its author and category.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Category").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAvailable retrieves books with stock left, for the loan form selector.
func (r *Repository) GetAvailable() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("available_quantity > 0").Order("id ASC").Find(&books).Error
	return books, err
}

// Create inserts a new book row.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// Update writes all four mutable columns of the book identified by id.
func (r *Repository) Update(id uint, update BookUpdate) error {
	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]any{
		"title":              update.Title,
		"author_id":          update.AuthorID,
		"category_id":        update.CategoryID,
		"available_quantity": update.AvailableQuantity,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the book row by id. Loans referencing the book are left in
// place with a dangling book_id; there is no cascade.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of book rows.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
