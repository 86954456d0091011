package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
)

// Update godoc
// @Summary Update a note
// @Description Replaces the title and content of a note and refreshes its update time
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param note body note.UpdateNote true "New title and content"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [put]
func Update(ctx *gin.Context) handler.Result {
	id, bad := parseId(ctx)
	if bad != nil {
		return *bad
	}

	var upd note.UpdateNote
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		return invalidBody(err)
	}

	updated, err := note.Update(ctx, id, upd)
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   updated,
	}
}
