// Package loans provides database operations for loan registration.
//
// Loans are insert-only: there is no update or delete operation, and the
// returned flag is never flipped by the application.
package loans

import (
	"time"

	"gorm.io/gorm"

	"github.com/rmaia/biblioteca/internal/entities"
)

// Repository handles all loan database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new loans repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Register inserts a loan for the given book and decrements the book's
// available quantity by one, inside a single transaction. The caller is
// expected to offer only books with stock left; no lower-bound check is
// applied here.
func (r *Repository) Register(bookID uint, loanDate time.Time) (*entities.Loan, error) {
	loan := &entities.Loan{
		BookID:   bookID,
		LoanDate: loanDate,
		Returned: false,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(loan).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Book{}).
			Where("id = ?", bookID).
			UpdateColumn("available_quantity", gorm.Expr("available_quantity - 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// GetAll retrieves all loans ordered by id.
func (r *Repository) GetAll() ([]entities.Loan, error) {
	var loans []entities.Loan
	err := r.db.Order("id ASC").Find(&loans).Error
	return loans, err
}

// Count returns the number of loan rows.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Loan{}).Count(&count).Error
	return count, err
}
