package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/biblioteca/internal/entities"
	"github.com/rmaia/biblioteca/internal/session"
)

// redirectHome sends the operator back to the page, which re-queries fresh
// state. All mutation handlers end here.
func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// formUint parses a form field as an unsigned id. Returns 0, false when the
// field is absent or not a number.
func formUint(c *gin.Context, field string) (uint, bool) {
	value, err := strconv.ParseUint(c.PostForm(field), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

// formInt parses a form field as an integer.
func formInt(c *gin.Context, field string) (int, bool) {
	value, err := strconv.Atoi(c.PostForm(field))
	if err != nil {
		return 0, false
	}
	return value, true
}

// bookLabel builds the selector label used by the edit and delete flows.
// The author and category must be preloaded.
func bookLabel(b entities.Book) string {
	return fmt.Sprintf("%s - %s - %s (Qtd: %d)", b.Title, b.Author.Name, b.Category.Name, b.AvailableQuantity)
}

// availableBookLabel builds the selector label used by the loan form.
func availableBookLabel(b entities.Book) string {
	return fmt.Sprintf("%s (Estoque: %d)", b.Title, b.AvailableQuantity)
}

// warnAndGoHome queues a warning flash and redirects to the page.
func warnAndGoHome(c *gin.Context, sessions *session.Manager, msg string) {
	sessions.FlashWarning(c.Request, msg)
	redirectHome(c)
}
