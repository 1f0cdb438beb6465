// Package models contains the persistence records for the relational
// backend, configured to work using GORM as the ORM.
package models

import (
	"time"
)

// Company is the table row for a company. Seq is an autoincrement key that
// fixes insertion order; ID is the public identifier.
type Company struct {
	Seq             uint   `gorm:"primaryKey;autoIncrement"`
	ID              string `gorm:"size:36;uniqueIndex;not null"`
	Name            string `gorm:"size:255"`
	EmployeesNumber int    `gorm:"check:employees_number >= 0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
