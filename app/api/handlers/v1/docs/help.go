package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/platform/database"
	"github.com/ribgsilva/simple-notes/platform/web/handler"
	"github.com/ribgsilva/simple-notes/sys"
)

type Help struct {
	Database  string            `json:"database" example:"sqlite"`
	Location  string            `json:"location,omitempty" example:"data/notes.db"`
	Endpoints map[string]string `json:"endpoints"`
}

// GetHelp godoc
// @Summary API usage help
// @Description Human readable notes on how to use the note endpoints
// @Tags Docs
// @Produce json
// @Success 200 {object} Help
// @Router /docs/help [get]
func GetHelp(*gin.Context) handler.Result {
	h := Help{
		Database: sys.Configs.Database.Driver,
		Endpoints: map[string]string{
			"list_notes":  "GET /notes",
			"create_note": "POST /notes",
			"get_note":    "GET /notes/{id}",
			"update_note": "PUT /notes/{id}",
			"delete_note": "DELETE /notes/{id}",
			"ui":          "GET /ui/notes",
			"swagger":     "GET /swagger/index.html",
		},
	}
	// mysql urls carry credentials
	if h.Database != database.MySQL {
		h.Location = sys.Configs.Database.ConnectionURL
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   h,
	}
}
