package memory

import (
	"context"

	"github.com/gartstein/employees/internal/models"
)

// EmployeeRepository is an in-memory employee store safe for concurrent use.
type EmployeeRepository struct {
	store *store[models.Employee]
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		store: newStore(
			func(e *models.Employee) string { return e.ID },
			func(e *models.Employee, id string) { e.ID = id },
		),
	}
}

func (r *EmployeeRepository) FindAll(_ context.Context) ([]*models.Employee, error) {
	return r.store.findAll(), nil
}

func (r *EmployeeRepository) FindPage(_ context.Context, page, pageSize int) (*models.Page[*models.Employee], error) {
	return r.store.findPage(page, pageSize), nil
}

func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*models.Employee, error) {
	return r.store.findByID(id)
}

// FindByGender matches gender exactly; "male" and "Male" are different.
func (r *EmployeeRepository) FindByGender(_ context.Context, gender string) ([]*models.Employee, error) {
	return r.store.filter(func(e *models.Employee) bool {
		return e.Gender == gender
	}), nil
}

func (r *EmployeeRepository) FindByCompanyID(_ context.Context, companyID string) ([]*models.Employee, error) {
	return r.store.filter(func(e *models.Employee) bool {
		return e.CompanyID == companyID
	}), nil
}

func (r *EmployeeRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	return r.store.exists(id), nil
}

func (r *EmployeeRepository) Create(_ context.Context, employee *models.Employee) error {
	r.store.create(employee)
	return nil
}

func (r *EmployeeRepository) Update(_ context.Context, employee *models.Employee) error {
	return r.store.update(employee)
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.delete(id), nil
}
