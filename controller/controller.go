package controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"cafeadmin/client"
	"cafeadmin/database"
	"cafeadmin/listview"
	"cafeadmin/model"
	"cafeadmin/nav"
	"cafeadmin/utils"
	"cafeadmin/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves the console's JSON endpoints on top of the cafe API.
type Handler struct {
	api   client.Gateway
	lists *listview.Registry
	db    *gorm.DB
}

// NewHandler wires the handlers. db may be nil, which turns the activity log off.
func NewHandler(api client.Gateway, db *gorm.DB) *Handler {
	return &Handler{
		api:   api,
		lists: listview.NewRegistry(api),
		db:    db,
	}
}

// respond writes a success envelope along with whatever navigation and
// notices the request produced.
func respond(c *gin.Context, rec *nav.Recorder, message string, data any) {
	body := gin.H{
		"success": true,
		"message": message,
		"data":    data,
	}
	if p := rec.Path(); p != "" {
		body["redirect"] = p
	}
	if n := rec.Notices(); len(n) > 0 {
		body["notices"] = n
	}
	c.JSON(http.StatusOK, body)
}

// fail maps an error from a form or list to a status and envelope. extra is
// merged into the body, e.g. the draft so the user can retry.
func fail(c *gin.Context, rec *nav.Recorder, err error, extra gin.H) {
	status := http.StatusInternalServerError
	body := gin.H{"success": false, "error": err.Error()}

	var (
		verrs validation.Errors
		te    *client.TransportError
		pe    *client.PayloadError
	)
	switch {
	case errors.As(err, &verrs):
		status = http.StatusUnprocessableEntity
		body["error"] = "Please correct the highlighted fields"
		body["errors"] = verrs
	case errors.Is(err, listview.ErrNotConfirmed):
		status = http.StatusConflict
		body["error"] = "Deletion must be confirmed"
	case errors.Is(err, listview.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &pe):
		status = http.StatusBadGateway
		body["error"] = "Unexpected response from the cafe service"
	case errors.As(err, &te):
		status = http.StatusBadGateway
		body["error"] = "The cafe service could not complete the request"
		if te.StatusCode != 0 {
			body["upstream_status"] = te.StatusCode
		}
	default:
		log.Printf("controller: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	for k, v := range extra {
		body[k] = v
	}
	if rec != nil {
		if n := rec.Notices(); len(n) > 0 {
			body["notices"] = n
		}
	}
	c.JSON(status, body)
}

type refresher interface {
	Refresh(ctx context.Context) error
}

// reload refetches lists after a successful save. A failed refetch is already
// logged and reported on the list's notices, and the save itself stands.
func reload(c *gin.Context, lists ...refresher) {
	for _, l := range lists {
		_ = l.Refresh(c.Request.Context())
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// record logs a successful mutation. A failure to log never fails the request.
func (h *Handler) record(c *gin.Context, a model.Activity) {
	if h.db == nil {
		return
	}
	a.RequestID = utils.RequestID(c)
	if err := database.RecordActivity(h.db, &a); err != nil {
		log.Printf("controller: %v", err)
	}
}
