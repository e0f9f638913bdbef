package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CafeDraft is the editable state behind the cafe form.
type CafeDraft struct {
	ID          string `json:"id,omitempty" form:"id"`
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	Location    string `json:"location" form:"location" validate:"required"`
	Logo        *Logo  `json:"logo,omitempty" form:"-" validate:"-"`
}

// EmployeeDraft is the editable state behind the employee form. Gender holds
// the radio value ("0"/"1") until the payload is built.
type EmployeeDraft struct {
	ID            string `json:"id,omitempty" form:"id"`
	EmployeeID    string `json:"employeeId" form:"employeeId" validate:"required,min=5,max=10"`
	Name          string `json:"name" form:"name" validate:"required,min=6,max=10"`
	EmailAddress  string `json:"emailAddress" form:"emailAddress" validate:"required,email_shape"`
	PhoneNumber   string `json:"phoneNumber" form:"phoneNumber" validate:"required,phone_local"`
	Gender        string `json:"gender" form:"gender" validate:"required,gender"`
	CafeID        string `json:"cafeId" form:"cafeId" validate:"required"`
	DateOfJoining string `json:"dateOfJoining" form:"dateOfJoining" validate:"required,join_date"`
}

// UnmarshalJSON accepts gender either as the radio value ("0") or as the
// wire code (0).
func (d *EmployeeDraft) UnmarshalJSON(b []byte) error {
	type plain EmployeeDraft
	aux := struct {
		*plain
		Gender json.RawMessage `json:"gender"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.Gender)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		// absent: keep the current value
	case raw[0] == '"':
		return json.Unmarshal(raw, &d.Gender)
	default:
		d.Gender = string(raw)
	}
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDate reads a date picker value or an ISO timestamp echoed by the API.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ISOTimestamp formats t the way browsers serialise dates: UTC with millisecond precision.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// DateOnly trims an ISO timestamp down to the value a date picker shows.
func DateOnly(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}
