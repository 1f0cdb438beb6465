package models

import (
	"time"
)

// Employee is the table row for an employee. CompanyID is a plain indexed
// column, not a foreign key: employees may outlive their company.
type Employee struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	ID        string `gorm:"size:36;uniqueIndex;not null"`
	Name      string `gorm:"size:255"`
	Age       int
	Gender    string `gorm:"size:64;index"`
	Salary    float64
	CompanyID string `gorm:"size:36;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
