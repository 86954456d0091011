package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/platform/web/middleware"
	"github.com/ribgsilva/simple-notes/sys"
)

// Result is what every api handler returns, it is written as json by Wrapper.
// Err is only logged, it never reaches the client.
type Result struct {
	Status int
	Body   any
	Err    error
}

// Error is the json body of every non 2xx response
type Error struct {
	Message string            `json:"message" example:"note not found"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Wrapper adapts a Result returning handler to gin, logging server side failures
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Status >= http.StatusInternalServerError && sys.R.Log != nil {
			sys.R.Log.Errorw("request failed",
				"method", ctx.Request.Method,
				"path", ctx.FullPath(),
				"status", r.Status,
				"requestId", middleware.RequestID(ctx),
				"body", r.Body,
				"ERROR", r.Err,
			)
		}
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}
