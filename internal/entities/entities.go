package entities

import (
	"time"
)

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;size:256;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;size:256;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Book struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"index;size:512;not null" json:"title"`
	AuthorID          uint      `gorm:"index;not null" json:"author_id"`
	CategoryID        uint      `gorm:"index;not null" json:"category_id"`
	Year              int       `gorm:"not null" json:"year"`
	AvailableQuantity int       `json:"available_quantity"`
	Author            Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category          Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Loan rows are insert-only. A deleted book leaves its loans behind with a
// dangling BookID, so the Book association must not be relied upon to exist.
type Loan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    uint      `gorm:"index;not null" json:"book_id"`
	LoanDate  time.Time `gorm:"type:date;not null" json:"loan_date"`
	Returned  bool      `gorm:"not null;default:false" json:"returned"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
