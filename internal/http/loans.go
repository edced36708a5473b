package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/biblioteca/internal/session"
)

// LoansController handles the loan registration form.
type LoansController struct {
	loans    LoanStore
	sessions *session.Manager
}

func NewLoansController(loans LoanStore, sessions *session.Manager) *LoansController {
	return &LoansController{loans: loans, sessions: sessions}
}

// Register inserts a loan for the selected book and decrements its stock.
// The loan date defaults to today when the field is empty. The selector only
// offers books with stock left; the quantity is not re-verified here.
func (controller *LoansController) Register(c *gin.Context) {
	bookID, ok := formUint(c, "book_id")
	if !ok {
		warnAndGoHome(c, controller.sessions, "Seleção de livro inválida.")
		return
	}

	loanDate := time.Now()
	if raw := c.PostForm("loan_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			warnAndGoHome(c, controller.sessions, "Data de empréstimo inválida.")
			return
		}
		loanDate = parsed
	}

	if _, err := controller.loans.Register(bookID, loanDate); err != nil {
		warnAndGoHome(c, controller.sessions, "Erro ao registrar empréstimo.")
		return
	}

	controller.sessions.FlashInfo(c.Request, "Empréstimo registrado com sucesso!")
	redirectHome(c)
}
