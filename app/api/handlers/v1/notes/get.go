package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	id, bad := parseId(ctx)
	if bad != nil {
		return *bad
	}

	get, err := note.Find(ctx, id)
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   get,
	}
}
