package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/", CafeList())
	assert.Equal(t, "/cafes/add", CafeAdd())
	assert.Equal(t, "/cafes/edit/c1", CafeEdit("c1"))
	assert.Equal(t, "/employees/c1", EmployeeList("c1"))
	assert.Equal(t, "/employees/add/c1", EmployeeAdd("c1"))
	assert.Equal(t, "/employees/edit/c1/e%2F2", EmployeeEdit("c1", "e/2"))
}

func TestRecorder(t *testing.T) {
	var r Recorder
	assert.Equal(t, "", r.Path())

	r.Navigate("/a")
	r.Navigate("/b")
	r.Notify(Notice{Level: Error, Message: "boom"})

	assert.Equal(t, "/b", r.Path())
	assert.Equal(t, []Notice{{Level: Error, Message: "boom"}}, r.Notices())
}
