// Package nav describes the console's navigation surface and the side effects
// forms and lists trigger on it: moving to another page, showing a notice and
// asking the user to confirm.
package nav

import (
	"net/url"
	"sync"
)

func CafeList() string { return "/" }

func CafeAdd() string { return "/cafes/add" }

func CafeEdit(cafeID string) string { return "/cafes/edit/" + url.PathEscape(cafeID) }

func EmployeeList(cafeID string) string { return "/employees/" + url.PathEscape(cafeID) }

func EmployeeAdd(cafeID string) string { return "/employees/add/" + url.PathEscape(cafeID) }

func EmployeeEdit(cafeID, employeeID string) string {
	return "/employees/edit/" + url.PathEscape(cafeID) + "/" + url.PathEscape(employeeID)
}

type Level string

const (
	Info  Level = "info"
	Error Level = "error"
)

// Notice is a dismissible message for the user.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Navigator interface {
	Navigate(path string)
}

type Notifier interface {
	Notify(n Notice)
}

// UI is what forms and lists need from whoever renders them.
type UI interface {
	Navigator
	Notifier
}

type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always confirms every prompt.
var Always Confirmer = ConfirmFunc(func(string) bool { return true })

// Recorder keeps the last navigation target and every notice. HTTP handlers
// use one per request to build their response.
type Recorder struct {
	mu      sync.Mutex
	path    string
	notices []Notice
}

func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	r.path = path
	r.mu.Unlock()
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

// Path returns the last navigation target, or "" if none happened.
func (r *Recorder) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Discard ignores navigation and notices.
var Discard UI = discard{}

type discard struct{}

func (discard) Navigate(string) {}
func (discard) Notify(Notice)   {}
