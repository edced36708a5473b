// Package reports provides the read-only aggregate queries behind the
// tabular report views. All queries run against current committed state and
// perform no mutation.
package reports

import (
	"gorm.io/gorm"

	"github.com/rmaia/biblioteca/internal/entities"
)

// InventoryRow is one line of the full inventory listing.
type InventoryRow struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// Summary is the single-row stock and loan overview.
type Summary struct {
	TotalStock    int `json:"total_stock"`
	TotalLoans    int `json:"total_loans"`
	ReturnedLoans int `json:"returned_loans"`
}

// CategoryCount is one line of the books-per-category report.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Repository handles all report queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reports repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Inventory lists every book with its author and category names, ordered by
// title ascending.
func (r *Repository) Inventory() ([]InventoryRow, error) {
	var rows []InventoryRow
	err := r.db.Raw(`
		SELECT b.title AS title, a.name AS author, c.name AS category
		FROM books b
		JOIN authors a ON b.author_id = a.id
		JOIN categories c ON b.category_id = c.id
		ORDER BY b.title ASC
	`).Scan(&rows).Error
	return rows, err
}

// BooksPublishedAfter lists books with year strictly greater than the
// threshold.
func (r *Repository) BooksPublishedAfter(year int) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("year > ?", year).Order("id ASC").Find(&books).Error
	return books, err
}

// StockSummary returns total stock, total loans and returned-loan counts in
// one row. Empty tables yield zeros.
func (r *Repository) StockSummary() (*Summary, error) {
	var summary Summary
	err := r.db.Raw(`
		SELECT
			COALESCE((SELECT SUM(available_quantity) FROM books), 0) AS total_stock,
			(SELECT COUNT(*) FROM loans) AS total_loans,
			(SELECT COUNT(*) FROM loans WHERE returned) AS returned_loans
	`).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// BooksPerCategory counts books grouped by category name, most populated
// first.
func (r *Repository) BooksPerCategory() ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Raw(`
		SELECT c.name AS category, COUNT(b.id) AS count
		FROM books b
		JOIN categories c ON b.category_id = c.id
		GROUP BY c.name
		ORDER BY COUNT(b.id) DESC
	`).Scan(&rows).Error
	return rows, err
}
