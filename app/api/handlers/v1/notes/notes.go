package notes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
)

// DeleteResult is the body returned after a note is deleted
type DeleteResult struct {
	Status string `json:"status" example:"deleted"`
	Id     uint64 `json:"id" example:"1"`
}

func parseId(ctx *gin.Context) (uint64, *handler.Result) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, &handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}
	return id, nil
}

// failure maps business errors to a response
func failure(err error) handler.Result {
	var verr *note.ValidationError
	switch {
	case errors.As(err, &verr):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: verr.Error(), Fields: verr.Fields},
		}
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "note not found"},
		}
	default:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "internal server error"},
			Err:    err,
		}
	}
}

func invalidBody(err error) handler.Result {
	return handler.Result{
		Status: http.StatusBadRequest,
		Body:   handler.Error{Message: "invalid body: " + err.Error()},
	}
}
