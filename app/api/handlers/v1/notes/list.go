package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description Returns every note ordered by last update time, most recent first
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /notes [get]
func List(ctx *gin.Context) handler.Result {
	notes, err := note.List(ctx)
	if err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   notes,
	}
}
