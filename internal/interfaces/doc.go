// Package interfaces documents the core abstractions used throughout the
// application.
//
// # Data Access Interfaces
//
// Controllers depend on small store interfaces declared in internal/http
// (stores.go) rather than on the repositories directly:
//
//   - AuthorStore: author listing and renaming
//   - CategoryStore: category listing and lookup
//   - BookStore: book CRUD and the available-stock selector query
//   - LoanStore: loan registration
//   - ReportStore: read-only aggregate report queries
//
// Each interface is implemented by the matching repository under
// internal/database.
//
// # Adding a New Database Domain
//
// To add a new data domain:
//
//  1. Create a sub-package under internal/database/ with a Repository
//     holding a *gorm.DB and a NewRepository constructor.
//
//  2. Declare the store interface next to the controller that consumes it,
//     listing only the methods that controller needs.
//
//  3. Add a compile-time check in checks.go:
//
//     var _ SomeStore = (*Repository)(nil)
package interfaces
