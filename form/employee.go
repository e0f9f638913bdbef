package form

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"cafeadmin/model"
	"cafeadmin/nav"
	"cafeadmin/validation"
)

// EmployeeGateway is the part of the API the employee form calls.
type EmployeeGateway interface {
	CreateEmployee(ctx context.Context, emp model.EmployeePayload) (model.Employee, error)
	UpdateEmployee(ctx context.Context, emp model.EmployeePayload) (model.Employee, error)
}

type EmployeeForm struct {
	gw        EmployeeGateway
	ui        nav.UI
	mode      Mode
	navCafeID string

	mu    sync.Mutex
	draft model.EmployeeDraft
}

// NewEmployeeForm starts a form for the cafe the user navigated from. With a
// non-nil existing record the form edits it; the navigation cafe fills in
// when the record carries none.
func NewEmployeeForm(gw EmployeeGateway, ui nav.UI, navCafeID string, existing *model.Employee) *EmployeeForm {
	f := &EmployeeForm{gw: gw, ui: ui, navCafeID: navCafeID}
	f.draft = f.blank()
	if existing != nil {
		f.mode = Edit
		f.draft = model.EmployeeDraft{
			ID:            existing.ID,
			EmployeeID:    existing.EmployeeID,
			Name:          existing.Name,
			EmailAddress:  existing.EmailAddress,
			PhoneNumber:   existing.PhoneNumber,
			Gender:        strconv.Itoa(int(existing.Gender)),
			CafeID:        existing.CafeID,
			DateOfJoining: model.DateOnly(existing.StartDate),
		}
		if f.draft.CafeID == "" {
			f.draft.CafeID = navCafeID
		}
	}
	return f
}

func (f *EmployeeForm) blank() model.EmployeeDraft {
	return model.EmployeeDraft{CafeID: f.navCafeID}
}

func (f *EmployeeForm) Mode() Mode { return f.mode }

func (f *EmployeeForm) Draft() model.EmployeeDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *EmployeeForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch name {
	case "employeeId":
		f.draft.EmployeeID = value
	case "name":
		f.draft.Name = value
	case "emailAddress":
		f.draft.EmailAddress = value
	case "phoneNumber":
		f.draft.PhoneNumber = value
	case "gender":
		f.draft.Gender = value
	case "cafeId":
		f.draft.CafeID = value
	case "dateOfJoining":
		f.draft.DateOfJoining = value
	default:
		return fmt.Errorf("employee form: %w %q", ErrUnknownField, name)
	}
	return nil
}

// Submit validates the draft and, if it is valid, creates or updates the
// employee. On success the user is sent back to the cafe's employee list.
func (f *EmployeeForm) Submit(ctx context.Context) (model.Employee, error) {
	d := f.Draft()
	if errs := validation.ValidateEmployee(d); len(errs) > 0 {
		return model.Employee{}, errs
	}
	payload, err := EmployeePayload(d)
	if err != nil {
		return model.Employee{}, err
	}

	var saved model.Employee
	if f.mode == Edit {
		saved, err = f.gw.UpdateEmployee(ctx, payload)
	} else {
		saved, err = f.gw.CreateEmployee(ctx, payload)
	}
	if err != nil {
		failed(f.ui, f.mode.String()+" employee", err)
		return model.Employee{}, err
	}

	if f.mode == Create {
		f.mu.Lock()
		f.draft = f.blank()
		f.mu.Unlock()
	}
	f.ui.Notify(nav.Notice{Level: nav.Info, Message: "Employee saved successfully!"})
	f.ui.Navigate(nav.EmployeeList(payload.CafeID))
	return saved, nil
}

// Cancel throws the draft away and goes back to the list it came from.
func (f *EmployeeForm) Cancel() {
	f.mu.Lock()
	cafeID := f.navCafeID
	if cafeID == "" {
		cafeID = f.draft.CafeID
	}
	f.draft = f.blank()
	f.mu.Unlock()

	if cafeID == "" {
		f.ui.Navigate(nav.CafeList())
		return
	}
	f.ui.Navigate(nav.EmployeeList(cafeID))
}

// EmployeePayload converts a validated draft to the wire shape: the gender
// label becomes its code and the joining date an ISO timestamp.
func EmployeePayload(d model.EmployeeDraft) (model.EmployeePayload, error) {
	gender, err := model.ParseGender(d.Gender)
	if err != nil {
		return model.EmployeePayload{}, validation.Errors{"gender": "Please select a gender."}
	}
	start, err := model.ParseDate(d.DateOfJoining)
	if err != nil {
		return model.EmployeePayload{}, validation.Errors{"dateOfJoining": "Date of joining must be a valid date."}
	}
	return model.EmployeePayload{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		Name:         d.Name,
		EmailAddress: d.EmailAddress,
		PhoneNumber:  d.PhoneNumber,
		Gender:       gender,
		CafeID:       d.CafeID,
		StartDate:    model.ISOTimestamp(start),
	}, nil
}
