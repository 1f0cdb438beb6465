package errors

import (
	"fmt"
)

var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrInvalidInput = fmt.Errorf("invalid input")
)

// CompanyNotFound reports a company id that could not be resolved.
func CompanyNotFound(id string) error {
	return fmt.Errorf("company with id: %s %w", id, ErrNotFound)
}

// EmployeeNotFound reports an employee id that could not be resolved.
func EmployeeNotFound(id string) error {
	return fmt.Errorf("employee with id: %s %w", id, ErrNotFound)
}
