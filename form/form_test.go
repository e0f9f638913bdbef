package form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"cafeadmin/client"
	"cafeadmin/model"
	"cafeadmin/nav"
	"cafeadmin/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillEmployee(t *testing.T, f *EmployeeForm) {
	t.Helper()
	fields := map[string]string{
		"employeeId":    "UI0001",
		"name":          "Jane Tan",
		"emailAddress":  "jane@cafe.sg",
		"phoneNumber":   "81234567",
		"gender":        "0",
		"dateOfJoining": "2024-03-01",
	}
	for k, v := range fields {
		require.NoError(t, f.SetField(k, v))
	}
}

func TestEmployeeSubmitBuildsPayload(t *testing.T) {
	fake := client.NewFake()
	ui := &nav.Recorder{}
	f := NewEmployeeForm(fake, ui, "c1", nil)
	fillEmployee(t, f)

	saved, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, []string{"CreateEmployee"}, fake.Calls())

	emps := fake.Employees()
	require.Len(t, emps, 1)
	assert.Equal(t, model.Male, emps[0].Gender)
	assert.Equal(t, "c1", emps[0].CafeID)
	_, err = time.Parse(time.RFC3339, emps[0].StartDate)
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-01T00:00:00.000Z", emps[0].StartDate)

	assert.Equal(t, nav.EmployeeList("c1"), ui.Path())
	assert.Equal(t, "c1", f.Draft().CafeID)
	assert.Empty(t, f.Draft().Name, "create form resets after a save")
}

func TestEmployeePayloadWireShape(t *testing.T) {
	p, err := EmployeePayload(model.EmployeeDraft{
		EmployeeID:    "UI0001",
		Name:          "Jane Tan",
		EmailAddress:  "jane@cafe.sg",
		PhoneNumber:   "81234567",
		Gender:        "0",
		CafeID:        "c1",
		DateOfJoining: "2024-03-01",
	})
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Equal(t, float64(0), wire["gender"])
	assert.Equal(t, "c1", wire["cafeId"])
	assert.Equal(t, "2024-03-01T00:00:00.000Z", wire["startDate"])
	assert.NotContains(t, wire, "id")
	assert.NotContains(t, wire, "dateOfJoining")

	p, err = EmployeePayload(model.EmployeeDraft{Gender: "Female", DateOfJoining: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, model.Female, p.Gender)
}

func TestEmployeeSubmitInvalidMakesNoCall(t *testing.T) {
	fake := client.NewFake()
	ui := &nav.Recorder{}
	f := NewEmployeeForm(fake, ui, "c1", nil)
	require.NoError(t, f.SetField("name", "Jo"))

	_, err := f.Submit(context.Background())
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("cafeId"))
	assert.Empty(t, fake.Calls())
	assert.Empty(t, ui.Path())
	assert.Empty(t, ui.Notices())
}

func TestEmployeeSubmitTransportErrorKeepsDraft(t *testing.T) {
	fake := client.NewFake()
	fake.Fail["CreateEmployee"] = &client.TransportError{Op: "create employee", StatusCode: http.StatusBadGateway}
	ui := &nav.Recorder{}
	f := NewEmployeeForm(fake, ui, "c1", nil)
	fillEmployee(t, f)
	before := f.Draft()

	_, err := f.Submit(context.Background())
	var te *client.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, before, f.Draft())
	assert.Empty(t, ui.Path())
	require.Len(t, ui.Notices(), 1)
	assert.Equal(t, nav.Error, ui.Notices()[0].Level)

	delete(fake.Fail, "CreateEmployee")
	_, err = f.Submit(context.Background())
	assert.NoError(t, err, "retry after a failure works")
}

func TestEmployeeEditPrepopulation(t *testing.T) {
	existing := &model.Employee{
		ID:           "e1",
		EmployeeID:   "UI0001",
		Name:         "Jane Tan",
		EmailAddress: "jane@cafe.sg",
		PhoneNumber:  "91234567",
		Gender:       model.Female,
		StartDate:    "2023-07-10T00:00:00.000Z",
	}
	f := NewEmployeeForm(client.NewFake(), nav.Discard, "c7", existing)

	d := f.Draft()
	assert.Equal(t, Edit, f.Mode())
	assert.Equal(t, "c7", d.CafeID)
	assert.Equal(t, "1", d.Gender)
	assert.Equal(t, "2023-07-10", d.DateOfJoining)

	existing.CafeID = "c2"
	assert.Equal(t, "c2", NewEmployeeForm(client.NewFake(), nav.Discard, "c7", existing).Draft().CafeID)
}

func TestEmployeeEditSubmitsUpdateWithID(t *testing.T) {
	fake := client.NewFake()
	fake.Seed([]model.Cafe{{ID: "c1", Name: "Brew"}}, []model.Employee{{ID: "e1", CafeID: "c1"}})
	existing := &model.Employee{
		ID: "e1", EmployeeID: "UI0001", Name: "Jane Tan", EmailAddress: "jane@cafe.sg",
		PhoneNumber: "91234567", CafeID: "c1", StartDate: "2023-07-10T00:00:00.000Z",
	}
	ui := &nav.Recorder{}
	f := NewEmployeeForm(fake, ui, "c1", existing)
	require.NoError(t, f.SetField("name", "Jane Lim"))

	saved, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "e1", saved.ID)
	assert.Equal(t, "Jane Lim", saved.Name)
	assert.Equal(t, "Brew", saved.CafeName)
	assert.Equal(t, []string{"UpdateEmployee"}, fake.Calls())
	assert.Equal(t, "Jane Lim", f.Draft().Name, "edit form keeps its draft")
}

func TestEmployeeCancel(t *testing.T) {
	fake := client.NewFake()
	ui := &nav.Recorder{}
	f := NewEmployeeForm(fake, ui, "c1", nil)
	fillEmployee(t, f)

	f.Cancel()
	assert.Equal(t, nav.EmployeeList("c1"), ui.Path())
	assert.Equal(t, model.EmployeeDraft{CafeID: "c1"}, f.Draft())
	assert.Empty(t, fake.Calls())
}

func TestSetFieldUnknown(t *testing.T) {
	f := NewEmployeeForm(client.NewFake(), nav.Discard, "", nil)
	assert.ErrorIs(t, f.SetField("salary", "1"), ErrUnknownField)

	cf := NewCafeForm(client.NewFake(), nav.Discard, nil)
	assert.ErrorIs(t, cf.SetField("employeeCount", "1"), ErrUnknownField)
}

func TestCafeCreate(t *testing.T) {
	fake := client.NewFake()
	ui := &nav.Recorder{}
	f := NewCafeForm(fake, ui, nil)
	require.NoError(t, f.SetField("name", "Brew"))
	require.NoError(t, f.SetField("description", "Coffee"))
	require.NoError(t, f.SetField("location", "Tampines"))
	f.SetLogo([]byte("\x89PNG\r\n\x1a\n0000"), "")

	saved, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	require.NotNil(t, saved.Logo)
	assert.Equal(t, "image/png", saved.Logo.ContentType)
	assert.Equal(t, nav.CafeList(), ui.Path())
}

func TestCafeSetLogoWithoutFileKeepsPrevious(t *testing.T) {
	f := NewCafeForm(client.NewFake(), nav.Discard, nil)
	f.SetLogo([]byte("gif"), "image/gif")
	f.SetLogo(nil, "image/png")

	logo := f.Draft().Logo
	require.NotNil(t, logo)
	assert.Equal(t, "image/gif", logo.ContentType)
	assert.Equal(t, "Z2lm", logo.Bytes)
}

func TestCafeEditUpdatesWithID(t *testing.T) {
	fake := client.NewFake()
	fake.Seed([]model.Cafe{{ID: "c1", Name: "Brew", Description: "Coffee", Location: "Tampines"}}, nil)
	ui := &nav.Recorder{}
	f := NewCafeForm(fake, ui, &model.Cafe{ID: "c1", Name: "Brew", Description: "Coffee", Location: "Tampines", EmployeeCount: 3})
	require.NoError(t, f.SetField("location", "Bedok"))

	saved, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c1", saved.ID)
	assert.Equal(t, "Bedok", fake.Cafes()[0].Location)
	assert.Equal(t, []string{"UpdateCafe"}, fake.Calls())
}

func TestCafeSubmitInvalid(t *testing.T) {
	fake := client.NewFake()
	f := NewCafeForm(fake, nav.Discard, nil)
	_, err := f.Submit(context.Background())

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 3)
	assert.Empty(t, fake.Calls())
}

func TestCafeTransportErrorKeepsDraft(t *testing.T) {
	fake := client.NewFake()
	fake.Fail["CreateCafe"] = &client.TransportError{Op: "create cafe", Err: errors.New("connection refused")}
	ui := &nav.Recorder{}
	f := NewCafeForm(fake, ui, nil)
	require.NoError(t, f.SetField("name", "Brew"))
	require.NoError(t, f.SetField("description", "Coffee"))
	require.NoError(t, f.SetField("location", "Tampines"))
	before := f.Draft()

	_, err := f.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, before, f.Draft())
	assert.Len(t, ui.Notices(), 1)
	assert.Empty(t, ui.Path())
}

func TestCafeCancel(t *testing.T) {
	ui := &nav.Recorder{}
	f := NewCafeForm(client.NewFake(), ui, &model.Cafe{ID: "c1", Name: "Brew"})
	f.Cancel()
	assert.Equal(t, nav.CafeList(), ui.Path())
	assert.Empty(t, f.Draft().Name)
}
