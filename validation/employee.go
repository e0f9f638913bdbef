package validation

import "cafeadmin/model"

var employeeMessages = map[string]string{
	"employeeId":    "Employee ID must be between 5 and 10 characters.",
	"name":          "Name must be between 6 and 10 characters.",
	"emailAddress":  "Invalid email address.",
	"phoneNumber":   "Phone number must start with 8 or 9 and have 8 digits.",
	"gender":        "Please select a gender.",
	"cafeId":        "Please select a café.",
	"dateOfJoining": "Please select a date of joining.",
}

// ValidateEmployee returns the failing fields of d. It does not modify d.
func ValidateEmployee(d model.EmployeeDraft) Errors {
	return run(d, func(field, tag string) string {
		if field == "dateOfJoining" && tag == "join_date" {
			return "Date of joining must be a valid date."
		}
		if m, ok := employeeMessages[field]; ok {
			return m
		}
		return "Invalid value."
	})
}
