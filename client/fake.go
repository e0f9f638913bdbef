package client

import (
	"context"
	"net/http"
	"sync"

	"cafeadmin/model"

	"github.com/google/uuid"
)

// Fake is an in-memory Gateway. Set Fail[op] to make the next calls of that
// operation return the error; ops are the method names, e.g. "DeleteCafe".
type Fake struct {
	mu        sync.Mutex
	cafes     []model.Cafe
	employees []model.Employee
	Fail      map[string]error
	calls     []string
}

var _ Gateway = (*Fake)(nil)

func NewFake() *Fake {
	return &Fake{Fail: map[string]error{}}
}

// Seed replaces the fake's contents.
func (f *Fake) Seed(cafes []model.Cafe, employees []model.Employee) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cafes = append([]model.Cafe(nil), cafes...)
	f.employees = append([]model.Employee(nil), employees...)
}

// Calls returns the operations invoked so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *Fake) Employees() []model.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Employee(nil), f.employees...)
}

func (f *Fake) Cafes() []model.Cafe {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Cafe(nil), f.cafes...)
}

// begin must be called with f.mu held.
func (f *Fake) begin(op string) error {
	f.calls = append(f.calls, op)
	return f.Fail[op]
}

func notFound(op, id string) error {
	return &TransportError{Op: op, Method: "FAKE", URL: id, StatusCode: http.StatusNotFound}
}

func (f *Fake) ListCafes(ctx context.Context) ([]model.Cafe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("ListCafes"); err != nil {
		return nil, err
	}
	out := make([]model.Cafe, len(f.cafes))
	for i, c := range f.cafes {
		c.EmployeeCount = f.countLocked(c.ID)
		out[i] = c
	}
	return out, nil
}

func (f *Fake) countLocked(cafeID string) int {
	n := 0
	for _, e := range f.employees {
		if e.CafeID == cafeID {
			n++
		}
	}
	return n
}

func (f *Fake) CreateCafe(ctx context.Context, cafe model.Cafe) (model.Cafe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("CreateCafe"); err != nil {
		return model.Cafe{}, err
	}
	cafe.ID = uuid.NewString()
	f.cafes = append(f.cafes, cafe)
	return cafe, nil
}

func (f *Fake) UpdateCafe(ctx context.Context, cafe model.Cafe) (model.Cafe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("UpdateCafe"); err != nil {
		return model.Cafe{}, err
	}
	for i := range f.cafes {
		if f.cafes[i].ID == cafe.ID {
			f.cafes[i] = cafe
			return cafe, nil
		}
	}
	return model.Cafe{}, notFound("update cafe", cafe.ID)
}

func (f *Fake) DeleteCafe(ctx context.Context, cafeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("DeleteCafe"); err != nil {
		return err
	}
	for i := range f.cafes {
		if f.cafes[i].ID == cafeID {
			f.cafes = append(f.cafes[:i], f.cafes[i+1:]...)
			return nil
		}
	}
	return notFound("delete cafe", cafeID)
}

func (f *Fake) ListEmployeesByCafe(ctx context.Context, cafeID string) ([]model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("ListEmployeesByCafe"); err != nil {
		return nil, err
	}
	var out []model.Employee
	for _, e := range f.employees {
		if e.CafeID == cafeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *Fake) CreateEmployee(ctx context.Context, p model.EmployeePayload) (model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("CreateEmployee"); err != nil {
		return model.Employee{}, err
	}
	p.ID = uuid.NewString()
	emp := f.fromPayloadLocked(p)
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *Fake) UpdateEmployee(ctx context.Context, p model.EmployeePayload) (model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("UpdateEmployee"); err != nil {
		return model.Employee{}, err
	}
	for i := range f.employees {
		if f.employees[i].ID == p.ID {
			f.employees[i] = f.fromPayloadLocked(p)
			return f.employees[i], nil
		}
	}
	return model.Employee{}, notFound("update employee", p.ID)
}

func (f *Fake) DeleteEmployee(ctx context.Context, employeeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin("DeleteEmployee"); err != nil {
		return err
	}
	for i := range f.employees {
		if f.employees[i].ID == employeeID {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return notFound("delete employee", employeeID)
}

func (f *Fake) fromPayloadLocked(p model.EmployeePayload) model.Employee {
	emp := model.Employee{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		Name:         p.Name,
		EmailAddress: p.EmailAddress,
		PhoneNumber:  p.PhoneNumber,
		Gender:       p.Gender,
		CafeID:       p.CafeID,
		StartDate:    p.StartDate,
	}
	for _, c := range f.cafes {
		if c.ID == p.CafeID {
			emp.CafeName = c.Name
		}
	}
	return emp
}
