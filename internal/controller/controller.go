// Package controller implements the core business logic (service layer)
// for managing Company and Employee entities: existence checks on top of
// repository operations and publication of change events.
package controller

import (
	"context"

	"github.com/gartstein/employees/internal/events"
	"github.com/gartstein/employees/internal/models"
)

// EventProducer publishes change events. Implementations must not block.
type EventProducer interface {
	Produce(event events.Event)
}

// CompanyRepository defines the storage interface for Company objects.
type CompanyRepository interface {
	FindAll(ctx context.Context) ([]*models.Company, error)
	FindPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Company], error)
	FindByID(ctx context.Context, id string) (*models.Company, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id string) (bool, error)
}

// EmployeeRepository defines the storage interface for Employee objects.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]*models.Employee, error)
	FindPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Employee], error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	FindByGender(ctx context.Context, gender string) ([]*models.Employee, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]*models.Employee, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id string) (bool, error)
}
