package http

import (
	"time"

	"github.com/rmaia/biblioteca/internal/database/books"
	"github.com/rmaia/biblioteca/internal/database/reports"
	"github.com/rmaia/biblioteca/internal/entities"
)

// AuthorStore is the author access needed by the controllers.
// Implemented by database/authors.Repository.
type AuthorStore interface {
	GetAll() ([]entities.Author, error)
	GetByID(id uint) (*entities.Author, error)
	GetByName(name string) (*entities.Author, error)
	UpdateName(id uint, name string) error
}

// CategoryStore is the category access needed by the controllers.
// Implemented by database/categories.Repository.
type CategoryStore interface {
	GetAll() ([]entities.Category, error)
	GetByID(id uint) (*entities.Category, error)
	GetByName(name string) (*entities.Category, error)
}

// BookStore is the book access needed by the controllers.
// Implemented by database/books.Repository.
type BookStore interface {
	GetAll() ([]entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	GetAvailable() ([]entities.Book, error)
	Create(book *entities.Book) error
	Update(id uint, update books.BookUpdate) error
	Delete(id uint) error
}

// LoanStore is the loan access needed by the controllers.
// Implemented by database/loans.Repository.
type LoanStore interface {
	Register(bookID uint, loanDate time.Time) (*entities.Loan, error)
}

// ReportStore is the read-only report access needed by the controllers.
// Implemented by database/reports.Repository.
type ReportStore interface {
	Inventory() ([]reports.InventoryRow, error)
	BooksPublishedAfter(year int) ([]entities.Book, error)
	StockSummary() (*reports.Summary, error)
	BooksPerCategory() ([]reports.CategoryCount, error)
}
