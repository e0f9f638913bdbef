// Package form holds the draft behind the cafe and employee forms and turns a
// valid draft into an API call.
package form

import (
	"errors"
	"fmt"
	"log"

	"cafeadmin/nav"
)

type Mode int

const (
	Create Mode = iota
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "create"
}

var ErrUnknownField = errors.New("unknown field")

// failed tells the user a save did not go through. The draft is left alone so
// the user can retry.
func failed(ui nav.UI, what string, err error) {
	log.Printf("form: %s failed: %v", what, err)
	ui.Notify(nav.Notice{
		Level:   nav.Error,
		Message: fmt.Sprintf("Failed to %s. Please try again.", what),
	})
}
