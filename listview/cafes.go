package listview

import (
	"context"
	"fmt"
	"log"

	"cafeadmin/model"
	"cafeadmin/nav"
)

type CafeGateway interface {
	ListCafes(ctx context.Context) ([]model.Cafe, error)
	DeleteCafe(ctx context.Context, cafeID string) error
}

// CafeList is the cafe grid: every cafe with edit, delete and view-employees actions.
type CafeList struct {
	gw   CafeGateway
	ui   nav.UI
	rows *rows[model.Cafe]
}

func NewCafeList(gw CafeGateway, ui nav.UI) *CafeList {
	return &CafeList{
		gw:   gw,
		ui:   ui,
		rows: &rows[model.Cafe]{name: "cafe list", id: func(c model.Cafe) string { return c.ID }},
	}
}

// With returns a view of the same rows that reports to ui.
func (l *CafeList) With(ui nav.UI) *CafeList {
	return &CafeList{gw: l.gw, ui: ui, rows: l.rows}
}

// Refresh refetches every cafe. On failure the current rows stay and the user
// is told.
func (l *CafeList) Refresh(ctx context.Context) error {
	seq := l.rows.begin()
	cafes, err := l.gw.ListCafes(ctx)
	if err != nil {
		log.Printf("listview: fetch cafes: %v", err)
		l.ui.Notify(nav.Notice{Level: nav.Error, Message: "Failed to load cafes."})
		return err
	}
	l.rows.replace(seq, cafes)
	return nil
}

// Rows returns a copy of the cached cafes in server order.
func (l *CafeList) Rows() []model.Cafe { return l.rows.snapshot() }

func (l *CafeList) Loaded() bool { return l.rows.isLoaded() }

func (l *CafeList) Find(id string) (model.Cafe, bool) { return l.rows.find(id) }

func (l *CafeList) Add() { l.ui.Navigate(nav.CafeAdd()) }

// Edit opens the form for a cached cafe and returns the row to pre-populate it.
func (l *CafeList) Edit(id string) (model.Cafe, error) {
	cafe, ok := l.rows.find(id)
	if !ok {
		return model.Cafe{}, fmt.Errorf("cafe %q: %w", id, ErrNotFound)
	}
	l.ui.Navigate(nav.CafeEdit(id))
	return cafe, nil
}

func (l *CafeList) ViewEmployees(id string) { l.ui.Navigate(nav.EmployeeList(id)) }

// Delete asks for confirmation, deletes the cafe and removes its row. The row
// stays when the API call fails.
func (l *CafeList) Delete(ctx context.Context, id string, confirm nav.Confirmer) error {
	if !confirm.Confirm("Are you sure you want to delete this cafe?") {
		return ErrNotConfirmed
	}
	seq := l.rows.begin()
	if err := l.gw.DeleteCafe(ctx, id); err != nil {
		log.Printf("listview: delete cafe %s: %v", id, err)
		l.ui.Notify(nav.Notice{Level: nav.Error, Message: "Failed to delete cafe. Please try again."})
		return err
	}
	l.rows.remove(seq, id)
	l.ui.Notify(nav.Notice{Level: nav.Info, Message: "Cafe deleted successfully!"})
	return nil
}
