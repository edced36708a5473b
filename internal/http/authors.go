package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rmaia/biblioteca/internal/session"
)

// AuthorsController handles the author edit flow. There is no create or
// delete operation for authors; renaming is the only mutation.
type AuthorsController struct {
	authors  AuthorStore
	sessions *session.Manager
}

func NewAuthorsController(authors AuthorStore, sessions *session.Manager) *AuthorsController {
	return &AuthorsController{authors: authors, sessions: sessions}
}

// Load stages the selected author's id and current name in the session.
func (controller *AuthorsController) Load(c *gin.Context) {
	id, ok := formUint(c, "author_id")
	if !ok {
		warnAndGoHome(c, controller.sessions, "Seleção de autor inválida.")
		return
	}

	author, err := controller.authors.GetByID(id)
	if err != nil {
		warnAndGoHome(c, controller.sessions, "Autor não encontrado.")
		return
	}

	controller.sessions.StageAuthor(c.Request, author.ID, author.Name)
	redirectHome(c)
}

// Save renames the staged author. The staged state is kept after the save,
// so the edit form stays open until another author is loaded.
func (controller *AuthorsController) Save(c *gin.Context) {
	staged, ok := controller.sessions.StagedAuthor(c.Request)
	if !ok {
		warnAndGoHome(c, controller.sessions, "Nenhum autor carregado para edição.")
		return
	}

	name := c.PostForm("name")
	if err := controller.authors.UpdateName(staged.ID, name); err != nil {
		warnAndGoHome(c, controller.sessions, "Erro ao atualizar autor.")
		return
	}

	// Keep the form pre-filled with the saved name on the next render.
	controller.sessions.StageAuthor(c.Request, staged.ID, name)
	controller.sessions.FlashInfo(c.Request, "Autor atualizado com sucesso!")
	redirectHome(c)
}
