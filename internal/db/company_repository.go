package db

import (
	"context"
	"errors"

	"github.com/gartstein/employees/internal/db/models"
	e "github.com/gartstein/employees/internal/errors"
	domain "github.com/gartstein/employees/internal/models"
	"github.com/gartstein/employees/internal/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]*domain.Company, error) {
	var rows []models.Company
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	return companiesFromRows(rows), nil
}

func (r *CompanyRepository) FindPage(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Company], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, err
	}
	skip, ok := pagination.Offset(page, pageSize)
	if !ok || int64(skip) >= total {
		return domain.NewPage[*domain.Company](nil, page, pageSize, total), nil
	}

	var rows []models.Company
	result := r.db.WithContext(ctx).
		Order("seq").
		Offset(skip).
		Limit(pageSize).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return domain.NewPage(companiesFromRows(rows), page, pageSize, total), nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	var row models.Company
	result := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return companyFromRow(&row), nil
}

func (r *CompanyRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	row := models.Company{
		ID:              company.ID,
		Name:            company.Name,
		EmployeesNumber: company.EmployeesNumber,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// Update overwrites every mutable column, zero values included.
func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]interface{}{
			"name":             company.Name,
			"employees_number": company.EmployeesNumber,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Company{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func companyFromRow(row *models.Company) *domain.Company {
	return &domain.Company{
		ID:              row.ID,
		Name:            row.Name,
		EmployeesNumber: row.EmployeesNumber,
	}
}

func companiesFromRows(rows []models.Company) []*domain.Company {
	out := make([]*domain.Company, 0, len(rows))
	for i := range rows {
		out = append(out, companyFromRow(&rows[i]))
	}
	return out
}
