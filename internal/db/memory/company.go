package memory

import (
	"context"

	"github.com/gartstein/employees/internal/models"
)

// CompanyRepository is an in-memory company store safe for concurrent use.
type CompanyRepository struct {
	store *store[models.Company]
}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{
		store: newStore(
			func(c *models.Company) string { return c.ID },
			func(c *models.Company, id string) { c.ID = id },
		),
	}
}

func (r *CompanyRepository) FindAll(_ context.Context) ([]*models.Company, error) {
	return r.store.findAll(), nil
}

func (r *CompanyRepository) FindPage(_ context.Context, page, pageSize int) (*models.Page[*models.Company], error) {
	return r.store.findPage(page, pageSize), nil
}

func (r *CompanyRepository) FindByID(_ context.Context, id string) (*models.Company, error) {
	return r.store.findByID(id)
}

func (r *CompanyRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	return r.store.exists(id), nil
}

func (r *CompanyRepository) Create(_ context.Context, company *models.Company) error {
	r.store.create(company)
	return nil
}

func (r *CompanyRepository) Update(_ context.Context, company *models.Company) error {
	return r.store.update(company)
}

func (r *CompanyRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.delete(id), nil
}
