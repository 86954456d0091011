package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/simple-notes/business/v1/note"
	"github.com/ribgsilva/simple-notes/platform/web/middleware"
	"github.com/ribgsilva/simple-notes/sys"
)

type listPage struct {
	Notes []note.Note
}

type notePage struct {
	Note note.Note
}

type formPage struct {
	Heading string
	Action  string
	Cancel  string
	Title   string
	Content string
	Errors  map[string]string
}

type errorPage struct {
	Status  int
	Message string
}

func List(ctx *gin.Context) {
	notes, err := note.List(ctx)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "list", listPage{Notes: notes})
}

func New(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "form", formPage{
		Heading: "New note",
		Action:  "/ui/notes",
		Cancel:  "/ui/notes",
	})
}

func Create(ctx *gin.Context) {
	title := ctx.PostForm("title")
	content, ok := ctx.GetPostForm("content")

	newN := note.NewNote{Title: title}
	if ok {
		newN.Content = &content
	}

	created, err := note.Create(ctx, newN)
	if err != nil {
		formError(ctx, err, formPage{
			Heading: "New note",
			Action:  "/ui/notes",
			Cancel:  "/ui/notes",
			Title:   title,
			Content: content,
		})
		return
	}
	ctx.Redirect(http.StatusSeeOther, noteURL(created.Id))
}

func Show(ctx *gin.Context) {
	id, ok := parseId(ctx)
	if !ok {
		return
	}
	n, err := note.Find(ctx, id)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "detail", notePage{Note: n})
}

func Edit(ctx *gin.Context) {
	id, ok := parseId(ctx)
	if !ok {
		return
	}
	n, err := note.Find(ctx, id)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "form", formPage{
		Heading: "Edit note",
		Action:  noteURL(id),
		Cancel:  noteURL(id),
		Title:   n.Title,
		Content: n.Content,
	})
}

func Update(ctx *gin.Context) {
	id, ok := parseId(ctx)
	if !ok {
		return
	}
	title := ctx.PostForm("title")
	content, present := ctx.GetPostForm("content")

	upd := note.UpdateNote{Title: title}
	if present {
		upd.Content = &content
	}

	if _, err := note.Update(ctx, id, upd); err != nil {
		formError(ctx, err, formPage{
			Heading: "Edit note",
			Action:  noteURL(id),
			Cancel:  noteURL(id),
			Title:   title,
			Content: content,
		})
		return
	}
	ctx.Redirect(http.StatusSeeOther, noteURL(id))
}

func Delete(ctx *gin.Context) {
	id, ok := parseId(ctx)
	if !ok {
		return
	}
	if err := note.Delete(ctx, id); err != nil {
		fail(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/ui/notes")
}

func noteURL(id uint64) string {
	return fmt.Sprintf("/ui/notes/%d", id)
}

func parseId(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.HTML(http.StatusBadRequest, "error", errorPage{Status: http.StatusBadRequest, Message: "invalid id"})
		return 0, false
	}
	return id, true
}

// formError shows validation failures on the form and anything else on the error page
func formError(ctx *gin.Context, err error, page formPage) {
	var verr *note.ValidationError
	if errors.As(err, &verr) {
		page.Errors = verr.Fields
		ctx.HTML(http.StatusBadRequest, "form", page)
		return
	}
	fail(ctx, err)
}

func fail(ctx *gin.Context, err error) {
	if errors.Is(err, note.ErrNotFound) {
		ctx.HTML(http.StatusNotFound, "error", errorPage{Status: http.StatusNotFound, Message: "note not found"})
		return
	}
	sys.R.Log.Errorw("ui request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"requestId", middleware.RequestID(ctx),
		"ERROR", err,
	)
	ctx.HTML(http.StatusInternalServerError, "error", errorPage{Status: http.StatusInternalServerError, Message: "something went wrong"})
}
