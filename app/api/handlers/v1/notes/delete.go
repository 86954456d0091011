package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Deletes a note using its id
// @Tags Note
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} DeleteResult
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	id, bad := parseId(ctx)
	if bad != nil {
		return *bad
	}

	if err := note.Delete(ctx, id); err != nil {
		return failure(err)
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   DeleteResult{Status: "deleted", Id: id},
	}
}
