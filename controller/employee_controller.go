package controller

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"cafeadmin/form"
	"cafeadmin/listview"
	"cafeadmin/model"
	"cafeadmin/nav"
	"cafeadmin/sheet"
	"cafeadmin/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListEmployees(c *gin.Context) {
	rec := &nav.Recorder{}
	list := h.lists.Employees(c.Param("id"), rec)
	if err := list.Refresh(c.Request.Context()); err != nil {
		fail(c, rec, err, nil)
		return
	}
	respond(c, rec, "Fetched employees successfully", list.Rows())
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var in model.EmployeeDraft
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, "Invalid employee: "+err.Error())
		return
	}

	rec := &nav.Recorder{}
	f := form.NewEmployeeForm(h.api, rec, c.Param("id"), nil)
	if err := applyEmployee(f, in); err != nil {
		badRequest(c, err.Error())
		return
	}
	h.submitEmployee(c, rec, f, model.ActionCreate)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	var in model.EmployeeDraft
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, "Invalid employee: "+err.Error())
		return
	}

	rec := &nav.Recorder{}
	cafeID := c.Param("id")
	existing, err := h.cachedEmployee(c, rec, cafeID, c.Param("employeeId"))
	if err != nil {
		fail(c, rec, err, nil)
		return
	}
	f := form.NewEmployeeForm(h.api, rec, cafeID, &existing)
	if err := applyEmployee(f, in); err != nil {
		badRequest(c, err.Error())
		return
	}
	h.submitEmployee(c, rec, f, model.ActionUpdate)
}

func (h *Handler) cachedEmployee(c *gin.Context, rec *nav.Recorder, cafeID, id string) (model.Employee, error) {
	list := h.lists.Employees(cafeID, rec)
	if emp, ok := list.Find(id); ok {
		return emp, nil
	}
	if err := list.Refresh(c.Request.Context()); err != nil {
		return model.Employee{}, err
	}
	emp, ok := list.Find(id)
	if !ok {
		return model.Employee{}, fmt.Errorf("employee %q: %w", id, listview.ErrNotFound)
	}
	return emp, nil
}

// applyEmployee copies the non-empty fields of in onto the form, so an edit
// only has to send what changed and a create keeps the cafe it came from.
func applyEmployee(f *form.EmployeeForm, in model.EmployeeDraft) error {
	fields := []struct{ name, value string }{
		{"employeeId", in.EmployeeID},
		{"name", in.Name},
		{"emailAddress", in.EmailAddress},
		{"phoneNumber", in.PhoneNumber},
		{"gender", in.Gender},
		{"cafeId", in.CafeID},
		{"dateOfJoining", in.DateOfJoining},
	}
	for _, fl := range fields {
		if fl.value == "" {
			continue
		}
		if err := f.SetField(fl.name, fl.value); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) submitEmployee(c *gin.Context, rec *nav.Recorder, f *form.EmployeeForm, action model.Action) {
	draft := f.Draft()
	saved, err := f.Submit(c.Request.Context())
	if err != nil {
		fail(c, rec, err, gin.H{"draft": draft})
		return
	}

	lists := []refresher{h.lists.Employees(draft.CafeID, rec)}
	// a move to another cafe also leaves the old cafe's list stale
	if from := c.Param("id"); from != "" && from != draft.CafeID {
		lists = append(lists, h.lists.Employees(from, rec))
	}
	reload(c, lists...)
	h.record(c, model.Activity{
		Entity:   "employee",
		EntityID: saved.ID,
		CafeID:   draft.CafeID,
		Action:   action,
		Summary:  saved.Name,
	})
	respond(c, rec, "Employee saved successfully", saved)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	cafeID := c.Param("id")
	id := c.Param("employeeId")
	rec := &nav.Recorder{}
	list := h.lists.Employees(cafeID, rec)
	if err := list.Delete(c.Request.Context(), id, confirmFromQuery(c)); err != nil {
		fail(c, rec, err, nil)
		return
	}
	h.record(c, model.Activity{Entity: "employee", EntityID: id, CafeID: cafeID, Action: model.ActionDelete})
	respond(c, rec, "Employee deleted successfully", gin.H{"employee_id": id, "employees": list.Rows()})
}

func (h *Handler) ExportEmployees(c *gin.Context) {
	cafeID := c.Param("id")
	rec := &nav.Recorder{}
	list := h.lists.Employees(cafeID, rec)
	if err := list.Refresh(c.Request.Context()); err != nil {
		fail(c, rec, err, nil)
		return
	}
	var buf bytes.Buffer
	if err := sheet.WriteEmployees(&buf, list.Rows()); err != nil {
		fail(c, rec, err, nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="employees-%s.xlsx"`, cafeID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

type importResult struct {
	Line   int               `json:"line"`
	ID     string            `json:"id,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// ImportEmployees creates one employee per workbook row. Each row goes
// through the same form as a manual entry; a bad row does not stop the rest.
func (h *Handler) ImportEmployees(c *gin.Context) {
	cafeID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "Excel file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	rows, err := sheet.ReadEmployees(file, cafeID)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	results := make([]importResult, 0, len(rows))
	imported := 0
	for _, row := range rows {
		res := importResult{Line: row.Line}
		f := form.NewEmployeeForm(h.api, nav.Discard, cafeID, nil)
		if err := applyEmployee(f, row.Draft); err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		saved, err := f.Submit(c.Request.Context())
		if err != nil {
			var verrs validation.Errors
			if errors.As(err, &verrs) {
				res.Errors = verrs
			} else {
				res.Error = err.Error()
			}
			results = append(results, res)
			continue
		}
		res.ID = saved.ID
		imported++
		results = append(results, res)
	}

	rec := &nav.Recorder{}
	reload(c, h.lists.Employees(cafeID, rec))

	if imported == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No valid rows found",
			"results": results,
		})
		return
	}

	h.record(c, model.Activity{
		Entity:  "employee",
		CafeID:  cafeID,
		Action:  model.ActionImport,
		Summary: fmt.Sprintf("imported %d of %d rows", imported, len(rows)),
	})
	respond(c, rec, "Bulk employee import finished", gin.H{
		"count":   imported,
		"total":   len(rows),
		"results": results,
	})
}
