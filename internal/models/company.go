// Package models defines the core domain models shared by every layer:
// Company, Employee and the generic Page returned by paginated queries.
package models

// Company defines the domain model for a company entity.
type Company struct {
	// ID is the unique identifier for the company, assigned on creation.
	ID string
	// Name is the company's name. Duplicates are allowed.
	Name string
	// EmployeesNumber is the declared head count of the company.
	EmployeesNumber int
}
