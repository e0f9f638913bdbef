package listview

import (
	"context"
	"fmt"
	"log"

	"cafeadmin/model"
	"cafeadmin/nav"
)

type EmployeeGateway interface {
	ListEmployeesByCafe(ctx context.Context, cafeID string) ([]model.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeList is the employee grid of one cafe.
type EmployeeList struct {
	gw     EmployeeGateway
	ui     nav.UI
	cafeID string
	rows   *rows[model.Employee]
}

func NewEmployeeList(gw EmployeeGateway, ui nav.UI, cafeID string) *EmployeeList {
	return &EmployeeList{
		gw:     gw,
		ui:     ui,
		cafeID: cafeID,
		rows:   &rows[model.Employee]{name: "employee list " + cafeID, id: func(e model.Employee) string { return e.ID }},
	}
}

// With returns a view of the same rows that reports to ui.
func (l *EmployeeList) With(ui nav.UI) *EmployeeList {
	return &EmployeeList{gw: l.gw, ui: ui, cafeID: l.cafeID, rows: l.rows}
}

func (l *EmployeeList) CafeID() string { return l.cafeID }

func (l *EmployeeList) Refresh(ctx context.Context) error {
	seq := l.rows.begin()
	emps, err := l.gw.ListEmployeesByCafe(ctx, l.cafeID)
	if err != nil {
		log.Printf("listview: fetch employees of %s: %v", l.cafeID, err)
		l.ui.Notify(nav.Notice{Level: nav.Error, Message: "Failed to load employees."})
		return err
	}
	l.rows.replace(seq, emps)
	return nil
}

func (l *EmployeeList) Rows() []model.Employee { return l.rows.snapshot() }

func (l *EmployeeList) Loaded() bool { return l.rows.isLoaded() }

func (l *EmployeeList) Find(id string) (model.Employee, bool) { return l.rows.find(id) }

func (l *EmployeeList) Add() { l.ui.Navigate(nav.EmployeeAdd(l.cafeID)) }

func (l *EmployeeList) Edit(id string) (model.Employee, error) {
	emp, ok := l.rows.find(id)
	if !ok {
		return model.Employee{}, fmt.Errorf("employee %q: %w", id, ErrNotFound)
	}
	l.ui.Navigate(nav.EmployeeEdit(l.cafeID, id))
	return emp, nil
}

func (l *EmployeeList) Delete(ctx context.Context, id string, confirm nav.Confirmer) error {
	if !confirm.Confirm("Are you sure you want to delete this employee?") {
		return ErrNotConfirmed
	}
	seq := l.rows.begin()
	if err := l.gw.DeleteEmployee(ctx, id); err != nil {
		log.Printf("listview: delete employee %s: %v", id, err)
		l.ui.Notify(nav.Notice{Level: nav.Error, Message: "Failed to delete employee. Please try again."})
		return err
	}
	l.rows.remove(seq, id)
	l.ui.Notify(nav.Notice{Level: nav.Info, Message: "Employee deleted successfully!"})
	return nil
}
