package form

import (
	"context"
	"fmt"
	"sync"

	"cafeadmin/model"
	"cafeadmin/nav"
	"cafeadmin/validation"

	"github.com/gabriel-vasile/mimetype"
)

// CafeGateway is the part of the API the cafe form calls.
type CafeGateway interface {
	CreateCafe(ctx context.Context, cafe model.Cafe) (model.Cafe, error)
	UpdateCafe(ctx context.Context, cafe model.Cafe) (model.Cafe, error)
}

type CafeForm struct {
	gw   CafeGateway
	ui   nav.UI
	mode Mode

	mu    sync.Mutex
	draft model.CafeDraft
}

// NewCafeForm starts an empty form, or an edit form when existing is non-nil.
func NewCafeForm(gw CafeGateway, ui nav.UI, existing *model.Cafe) *CafeForm {
	f := &CafeForm{gw: gw, ui: ui}
	if existing != nil {
		f.mode = Edit
		f.draft = model.CafeDraft{
			ID:          existing.ID,
			Name:        existing.Name,
			Description: existing.Description,
			Location:    existing.Location,
		}
		if !existing.Logo.Empty() {
			logo := *existing.Logo
			f.draft.Logo = &logo
		}
	}
	return f
}

func (f *CafeForm) Mode() Mode { return f.mode }

// Draft returns a copy of the current draft.
func (f *CafeForm) Draft() model.CafeDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.draft
	if d.Logo != nil {
		logo := *d.Logo
		d.Logo = &logo
	}
	return d
}

func (f *CafeForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch name {
	case "name":
		f.draft.Name = value
	case "description":
		f.draft.Description = value
	case "location":
		f.draft.Location = value
	default:
		return fmt.Errorf("cafe form: %w %q", ErrUnknownField, name)
	}
	return nil
}

// SetLogo replaces the logo with data. With no data the current logo stays.
// An empty or generic contentType is sniffed from the bytes.
func (f *CafeForm) SetLogo(data []byte, contentType string) {
	if len(data) == 0 {
		return
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}
	logo := model.NewLogo(data, contentType)
	f.mu.Lock()
	f.draft.Logo = logo
	f.mu.Unlock()
}

// Submit validates the draft and, if it is valid, creates or updates the cafe.
// Validation failures come back as validation.Errors without any API call.
func (f *CafeForm) Submit(ctx context.Context) (model.Cafe, error) {
	d := f.Draft()
	if errs := validation.ValidateCafe(d); len(errs) > 0 {
		return model.Cafe{}, errs
	}

	payload := CafePayload(d)
	var (
		saved model.Cafe
		err   error
	)
	if f.mode == Edit {
		saved, err = f.gw.UpdateCafe(ctx, payload)
	} else {
		saved, err = f.gw.CreateCafe(ctx, payload)
	}
	if err != nil {
		failed(f.ui, f.mode.String()+" cafe", err)
		return model.Cafe{}, err
	}

	f.ui.Navigate(nav.CafeList())
	return saved, nil
}

// Cancel throws the draft away and returns to the cafe list.
func (f *CafeForm) Cancel() {
	f.mu.Lock()
	f.draft = model.CafeDraft{ID: f.draft.ID}
	f.mu.Unlock()
	f.ui.Navigate(nav.CafeList())
}

// CafePayload builds the request body for d. An empty logo is dropped.
func CafePayload(d model.CafeDraft) model.Cafe {
	c := model.Cafe{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Location:    d.Location,
	}
	if !d.Logo.Empty() {
		c.Logo = d.Logo
	}
	return c
}
