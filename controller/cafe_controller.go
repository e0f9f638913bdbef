package controller

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"cafeadmin/form"
	"cafeadmin/listview"
	"cafeadmin/model"
	"cafeadmin/nav"
	"cafeadmin/sheet"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// maxUpload bounds what is read from a logo upload. Anything between
	// MaxLogoSize and this is read in full so validation can report it.
	maxUpload = 5 << 20
)

var cafeFields = []string{"name", "description", "location"}

func (h *Handler) ListCafes(c *gin.Context) {
	rec := &nav.Recorder{}
	list := h.lists.Cafes(rec)
	if err := list.Refresh(c.Request.Context()); err != nil {
		fail(c, rec, err, nil)
		return
	}
	respond(c, rec, "Fetched cafes successfully", list.Rows())
}

func (h *Handler) CreateCafe(c *gin.Context) {
	rec := &nav.Recorder{}
	f := form.NewCafeForm(h.api, rec, nil)
	h.submitCafe(c, rec, f, model.ActionCreate)
}

func (h *Handler) UpdateCafe(c *gin.Context) {
	rec := &nav.Recorder{}
	existing, err := h.cachedCafe(c, rec, c.Param("id"))
	if err != nil {
		fail(c, rec, err, nil)
		return
	}
	f := form.NewCafeForm(h.api, rec, &existing)
	h.submitCafe(c, rec, f, model.ActionUpdate)
}

// cachedCafe finds the row an edit starts from, refetching once if the cache
// does not have it.
func (h *Handler) cachedCafe(c *gin.Context, rec *nav.Recorder, id string) (model.Cafe, error) {
	list := h.lists.Cafes(rec)
	if cafe, ok := list.Find(id); ok {
		return cafe, nil
	}
	if err := list.Refresh(c.Request.Context()); err != nil {
		return model.Cafe{}, err
	}
	cafe, ok := list.Find(id)
	if !ok {
		return model.Cafe{}, fmt.Errorf("cafe %q: %w", id, listview.ErrNotFound)
	}
	return cafe, nil
}

// submitCafe copies the posted fields onto the form, submits it and refreshes
// the cafe list on success.
func (h *Handler) submitCafe(c *gin.Context, rec *nav.Recorder, f *form.CafeForm, action model.Action) {
	for _, field := range cafeFields {
		if v, ok := c.GetPostForm(field); ok {
			if err := f.SetField(field, v); err != nil {
				badRequest(c, err.Error())
				return
			}
		}
	}
	if err := processLogoUpload(c, f); err != nil {
		badRequest(c, "Logo upload failed: "+err.Error())
		return
	}

	saved, err := f.Submit(c.Request.Context())
	if err != nil {
		fail(c, rec, err, gin.H{"draft": f.Draft()})
		return
	}

	reload(c, h.lists.Cafes(rec))
	h.record(c, model.Activity{
		Entity:   "cafe",
		EntityID: saved.ID,
		CafeID:   saved.ID,
		Action:   action,
		Summary:  saved.Name,
	})
	respond(c, rec, "Cafe saved successfully", saved)
}

// processLogoUpload reads an optional "logo" file into the form.
func processLogoUpload(c *gin.Context, f *form.CafeForm) error {
	file, err := c.FormFile("logo")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil
		}
		return fmt.Errorf("failed to get uploaded file: %v", err)
	}

	if file.Size > maxUpload {
		return fmt.Errorf("file too large (max %dMB)", maxUpload>>20)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExts := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
	if !allowedExts[ext] {
		return fmt.Errorf("invalid file type, only JPG/JPEG/PNG/GIF/WEBP allowed")
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUpload))
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %v", err)
	}
	f.SetLogo(data, file.Header.Get("Content-Type"))
	return nil
}

func (h *Handler) DeleteCafe(c *gin.Context) {
	id := c.Param("id")
	rec := &nav.Recorder{}
	list := h.lists.Cafes(rec)
	if err := list.Delete(c.Request.Context(), id, confirmFromQuery(c)); err != nil {
		fail(c, rec, err, nil)
		return
	}
	h.lists.Forget(id)
	h.record(c, model.Activity{Entity: "cafe", EntityID: id, CafeID: id, Action: model.ActionDelete})
	respond(c, rec, "Cafe deleted successfully", gin.H{"cafe_id": id, "cafes": list.Rows()})
}

func (h *Handler) ExportCafes(c *gin.Context) {
	rec := &nav.Recorder{}
	list := h.lists.Cafes(rec)
	if err := list.Refresh(c.Request.Context()); err != nil {
		fail(c, rec, err, nil)
		return
	}
	var buf bytes.Buffer
	if err := sheet.WriteCafes(&buf, list.Rows()); err != nil {
		fail(c, rec, err, nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="cafes.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// confirmFromQuery treats ?confirm=true as the user's answer to the delete prompt.
func confirmFromQuery(c *gin.Context) nav.Confirmer {
	return nav.ConfirmFunc(func(string) bool {
		return c.Query("confirm") == "true"
	})
}
