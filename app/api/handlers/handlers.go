package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/app/api/handlers/v1/docs"
	"github.com/ribgsilva/simple-notes/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/simple-notes/app/api/handlers/v1/notes"
	"github.com/ribgsilva/simple-notes/app/api/handlers/web"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/", handler.Wrapper(healthcheck.GetRoot))
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
	r.GET("/docs/help", handler.Wrapper(docs.GetHelp))
}

func MapApi(r *gin.Engine) {
	r.GET("/notes", handler.Wrapper(notes.List))
	r.POST("/notes", handler.Wrapper(notes.Create))
	r.GET("/notes/:id", handler.Wrapper(notes.Get))
	r.PUT("/notes/:id", handler.Wrapper(notes.Update))
	r.DELETE("/notes/:id", handler.Wrapper(notes.Delete))
}

func MapWeb(r *gin.Engine) {
	r.SetHTMLTemplate(web.Templates())

	r.GET("/ui", func(ctx *gin.Context) { ctx.Redirect(http.StatusFound, "/ui/notes") })
	r.GET("/ui/notes", web.List)
	r.GET("/ui/new", web.New)
	r.POST("/ui/notes", web.Create)
	r.GET("/ui/notes/:id", web.Show)
	r.POST("/ui/notes/:id", web.Update)
	r.GET("/ui/notes/:id/edit", web.Edit)
	r.POST("/ui/notes/:id/delete", web.Delete)
}
