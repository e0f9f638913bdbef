package listview

import (
	"sync"

	"cafeadmin/nav"
)

// Gateway is what both lists need from the API.
type Gateway interface {
	CafeGateway
	EmployeeGateway
}

// Registry owns the cafe list and one employee list per cafe for the
// lifetime of the console process.
type Registry struct {
	gw    Gateway
	cafes *CafeList

	mu        sync.Mutex
	employees map[string]*EmployeeList
}

func NewRegistry(gw Gateway) *Registry {
	return &Registry{
		gw:        gw,
		cafes:     NewCafeList(gw, nav.Discard),
		employees: map[string]*EmployeeList{},
	}
}

// Cafes returns the shared cafe list reporting to ui.
func (r *Registry) Cafes(ui nav.UI) *CafeList {
	return r.cafes.With(ui)
}

// Employees returns the shared employee list of cafeID reporting to ui.
func (r *Registry) Employees(cafeID string, ui nav.UI) *EmployeeList {
	r.mu.Lock()
	l, ok := r.employees[cafeID]
	if !ok {
		l = NewEmployeeList(r.gw, nav.Discard, cafeID)
		r.employees[cafeID] = l
	}
	r.mu.Unlock()
	return l.With(ui)
}

// Forget drops the employee list of a deleted cafe.
func (r *Registry) Forget(cafeID string) {
	r.mu.Lock()
	delete(r.employees, cafeID)
	r.mu.Unlock()
}
