package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rmaia/biblioteca/internal/database/books"
	"github.com/rmaia/biblioteca/internal/entities"
	"github.com/rmaia/biblioteca/internal/session"
)

// BooksController handles the book insert, edit and delete form flows.
type BooksController struct {
	books      BookStore
	authors    AuthorStore
	categories CategoryStore
	sessions   *session.Manager
}

func NewBooksController(books BookStore, authors AuthorStore, categories CategoryStore, sessions *session.Manager) *BooksController {
	return &BooksController{
		books:      books,
		authors:    authors,
		categories: categories,
		sessions:   sessions,
	}
}

// resolveNames turns the submitted author and category names into ids.
// An unknown name means the form selects drifted from the store; nothing is
// written and the operator gets a warning.
func (controller *BooksController) resolveNames(c *gin.Context) (authorID, categoryID uint, ok bool) {
	author, err := controller.authors.GetByName(c.PostForm("author_name"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			warnAndGoHome(c, controller.sessions, "Autor desconhecido.")
		} else {
			warnAndGoHome(c, controller.sessions, "Erro ao consultar autores.")
		}
		return 0, 0, false
	}
	category, err := controller.categories.GetByName(c.PostForm("category_name"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			warnAndGoHome(c, controller.sessions, "Categoria desconhecida.")
		} else {
			warnAndGoHome(c, controller.sessions, "Erro ao consultar categorias.")
		}
		return 0, 0, false
	}
	return author.ID, category.ID, true
}

// Insert creates a book from the form fields. The title may be empty; only
// type coercion is applied.
func (controller *BooksController) Insert(c *gin.Context) {
	year, ok := formInt(c, "year")
	if !ok {
		warnAndGoHome(c, controller.sessions, "Ano de publicação inválido.")
		return
	}
	quantity, ok := formInt(c, "quantity")
	if !ok {
		warnAndGoHome(c, controller.sessions, "Quantidade inválida.")
		return
	}

	authorID, categoryID, ok := controller.resolveNames(c)
	if !ok {
		return
	}

	book := &entities.Book{
		Title:             c.PostForm("title"),
		AuthorID:          authorID,
		CategoryID:        categoryID,
		Year:              year,
		AvailableQuantity: quantity,
	}
	if err := controller.books.Create(book); err != nil {
		warnAndGoHome(c, controller.sessions, "Erro ao inserir livro.")
		return
	}

	controller.sessions.FlashInfo(c.Request, "Livro inserido com sucesso!")
	redirectHome(c)
}

// Load stages the selected book's fields in the session for the edit form.
func (controller *BooksController) Load(c *gin.Context) {
	id, ok := formUint(c, "book_id")
	if !ok {
		warnAndGoHome(c, controller.sessions, "Seleção de livro inválida.")
		return
	}

	book, err := controller.books.GetByID(id)
	if err != nil {
		warnAndGoHome(c, controller.sessions, "Livro não encontrado.")
		return
	}

	controller.sessions.StageBook(c.Request, session.StagedBook{
		ID:         book.ID,
		Title:      book.Title,
		AuthorID:   book.AuthorID,
		CategoryID: book.CategoryID,
		Quantity:   book.AvailableQuantity,
	})
	redirectHome(c)
}

// Save updates the staged book with the edited fields and clears the staged
// state. The staged id is not re-checked against the store before the
// update; if the row is gone the update affects nothing.
func (controller *BooksController) Save(c *gin.Context) {
	staged, ok := controller.sessions.StagedBook(c.Request)
	if !ok {
		warnAndGoHome(c, controller.sessions, "Nenhum livro carregado para edição.")
		return
	}

	quantity, ok := formInt(c, "quantity")
	if !ok {
		warnAndGoHome(c, controller.sessions, "Quantidade inválida.")
		return
	}

	authorID, categoryID, ok := controller.resolveNames(c)
	if !ok {
		return
	}

	err := controller.books.Update(staged.ID, books.BookUpdate{
		Title:             c.PostForm("title"),
		AuthorID:          authorID,
		CategoryID:        categoryID,
		AvailableQuantity: quantity,
	})
	if err != nil {
		warnAndGoHome(c, controller.sessions, "Erro ao atualizar livro.")
		return
	}

	controller.sessions.ClearBook(c.Request)
	controller.sessions.FlashInfo(c.Request, "Livro atualizado com sucesso!")
	redirectHome(c)
}

// Delete removes the selected book, but only when the confirmation checkbox
// was checked on the same submit. Loans pointing at the book are kept.
func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := formUint(c, "book_id")
	if !ok {
		warnAndGoHome(c, controller.sessions, "Seleção de livro inválida.")
		return
	}

	if c.PostForm("confirm") != "on" {
		warnAndGoHome(c, controller.sessions, "Por favor, confirme a exclusão marcando a caixa de seleção.")
		return
	}

	if err := controller.books.Delete(id); err != nil {
		warnAndGoHome(c, controller.sessions, "Erro ao deletar livro.")
		return
	}

	controller.sessions.FlashInfo(c.Request, "Livro deletado com sucesso!")
	redirectHome(c)
}
