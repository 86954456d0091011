package healthcheck

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
	"github.com/ribgsilva/simple-notes/sys"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Root is the bare liveness probe kept at /
type Root struct {
	Message string `json:"message" example:"Healthy"`
}

// Get godoc
// @Summary Health check
// @Description Checks the service can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} Status
// @Failure 503 {object} handler.Error
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	pingCtx, cancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
	defer cancel()
	if err := sys.R.Database.PingContext(pingCtx); err != nil {
		return handler.Result{
			Status: http.StatusServiceUnavailable,
			Body:   handler.Error{Message: "database unavailable"},
			Err:    err,
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   Status{Status: "ok"},
	}
}

// GetRoot godoc
// @Summary Liveness
// @Description Returns a simple response indicating the service is running
// @Tags Health
// @Produce json
// @Success 200 {object} Root
// @Router / [get]
func GetRoot(*gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   Root{Message: "Healthy"},
	}
}
