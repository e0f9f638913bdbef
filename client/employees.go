package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cafeadmin/model"
)

func (c *Client) ListEmployeesByCafe(ctx context.Context, cafeID string) ([]model.Employee, error) {
	path := "/Employees/GetEmployeesByCafeId?cafeId=" + url.QueryEscape(cafeID)
	var employees []model.Employee
	if err := c.do(ctx, "list employees", http.MethodGet, path, nil, &employees); err != nil {
		return nil, err
	}
	for i, emp := range employees {
		if emp.ID == "" {
			return nil, &PayloadError{Op: "list employees", Reason: fmt.Sprintf("employee at index %d has no id", i)}
		}
	}
	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, emp model.EmployeePayload) (model.Employee, error) {
	emp.ID = ""
	return c.saveEmployee(ctx, "create employee", http.MethodPost, "/Employees/CreateEmployee", emp)
}

func (c *Client) UpdateEmployee(ctx context.Context, emp model.EmployeePayload) (model.Employee, error) {
	if emp.ID == "" {
		return model.Employee{}, fmt.Errorf("update employee: missing id")
	}
	return c.saveEmployee(ctx, "update employee", http.MethodPut, "/Employees/UpdateEmployee", emp)
}

func (c *Client) saveEmployee(ctx context.Context, op, method, path string, emp model.EmployeePayload) (model.Employee, error) {
	var saved model.Employee
	if err := c.do(ctx, op, method, path, emp, &saved); err != nil {
		return model.Employee{}, err
	}
	if saved.ID == "" {
		return model.Employee{}, &PayloadError{Op: op, Reason: "employee has no id"}
	}
	return saved, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) error {
	return c.do(ctx, "delete employee", http.MethodDelete, "/Employees/DeleteEmployee/"+url.PathEscape(employeeID), nil, nil)
}
