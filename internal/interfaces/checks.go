package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.

import (
	"github.com/rmaia/biblioteca/internal/database/authors"
	"github.com/rmaia/biblioteca/internal/database/books"
	"github.com/rmaia/biblioteca/internal/database/categories"
	"github.com/rmaia/biblioteca/internal/database/loans"
	"github.com/rmaia/biblioteca/internal/database/reports"
	"github.com/rmaia/biblioteca/internal/http"
)

// AuthorStore implementations
var _ http.AuthorStore = (*authors.Repository)(nil)

// CategoryStore implementations
var _ http.CategoryStore = (*categories.Repository)(nil)

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)

// LoanStore implementations
var _ http.LoanStore = (*loans.Repository)(nil)

// ReportStore implementations
var _ http.ReportStore = (*reports.Repository)(nil)
