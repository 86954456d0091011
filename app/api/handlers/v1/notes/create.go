package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Creates a note and returns it with its generated id and timestamps
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Router /notes [post]
func Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return invalidBody(err)
	}

	created, err := note.Create(ctx, newN)
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
