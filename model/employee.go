package model

import (
	"fmt"
	"strconv"
	"strings"
)

type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	}
	return "Gender(" + strconv.Itoa(int(g)) + ")"
}

// Valid reports whether g is one of the defined codes.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// ParseGender accepts either the wire code ("0", "1") or the label.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "male":
		return Male, nil
	case "1", "female":
		return Female, nil
	}
	return 0, fmt.Errorf("unknown gender %q", s)
}

// Employee is the shape returned by the API. NoOfDaysWorked and CafeName are
// computed server-side.
type Employee struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId"`
	Name           string `json:"name"`
	EmailAddress   string `json:"emailAddress"`
	PhoneNumber    string `json:"phoneNumber"`
	Gender         Gender `json:"gender"`
	CafeID         string `json:"cafeId,omitempty"`
	StartDate      string `json:"startDate"`
	NoOfDaysWorked int    `json:"noOfDaysWorked"`
	CafeName       string `json:"cafeName,omitempty"`
}

// EmployeePayload is what the console sends on create and update.
type EmployeePayload struct {
	ID           string `json:"id,omitempty"`
	EmployeeID   string `json:"employeeId"`
	Name         string `json:"name"`
	EmailAddress string `json:"emailAddress"`
	PhoneNumber  string `json:"phoneNumber"`
	Gender       Gender `json:"gender"`
	CafeID       string `json:"cafeId"`
	StartDate    string `json:"startDate"`
}
