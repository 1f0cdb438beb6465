package models

// Employee defines the domain model for an employee entity.
type Employee struct {
	// ID is the unique identifier for the employee, assigned on creation.
	ID string
	// Name is the employee's full name.
	Name string
	// Age is the employee's age in years.
	Age int
	// Gender is stored verbatim and matched exactly when filtering.
	Gender string
	// Salary is the employee's salary.
	Salary float64
	// CompanyID references the employing company. Empty when unassigned.
	CompanyID string
}
