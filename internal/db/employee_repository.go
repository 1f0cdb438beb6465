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

type EmployeeRepository struct {
	db *gorm.DB
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	return r.findWhere(ctx, nil)
}

func (r *EmployeeRepository) FindPage(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Employee], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, err
	}
	skip, ok := pagination.Offset(page, pageSize)
	if !ok || int64(skip) >= total {
		return domain.NewPage[*domain.Employee](nil, page, pageSize, total), nil
	}

	var rows []models.Employee
	result := r.db.WithContext(ctx).
		Order("seq").
		Offset(skip).
		Limit(pageSize).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return domain.NewPage(employeesFromRows(rows), page, pageSize, total), nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	var row models.Employee
	result := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return employeeFromRow(&row), nil
}

func (r *EmployeeRepository) FindByGender(ctx context.Context, gender string) ([]*domain.Employee, error) {
	return r.findWhere(ctx, map[string]interface{}{"gender": gender})
}

func (r *EmployeeRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*domain.Employee, error) {
	return r.findWhere(ctx, map[string]interface{}{"company_id": companyID})
}

func (r *EmployeeRepository) findWhere(ctx context.Context, conds map[string]interface{}) ([]*domain.Employee, error) {
	query := r.db.WithContext(ctx).Order("seq")
	if len(conds) > 0 {
		query = query.Where(conds)
	}
	var rows []models.Employee
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return employeesFromRows(rows), nil
}

func (r *EmployeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}
	row := models.Employee{
		ID:        employee.ID,
		Name:      employee.Name,
		Age:       employee.Age,
		Gender:    employee.Gender,
		Salary:    employee.Salary,
		CompanyID: employee.CompanyID,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// Update overwrites every mutable column, zero values included.
func (r *EmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	result := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("id = ?", employee.ID).
		Updates(map[string]interface{}{
			"name":       employee.Name,
			"age":        employee.Age,
			"gender":     employee.Gender,
			"salary":     employee.Salary,
			"company_id": employee.CompanyID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Employee{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func employeeFromRow(row *models.Employee) *domain.Employee {
	return &domain.Employee{
		ID:        row.ID,
		Name:      row.Name,
		Age:       row.Age,
		Gender:    row.Gender,
		Salary:    row.Salary,
		CompanyID: row.CompanyID,
	}
}

func employeesFromRows(rows []models.Employee) []*domain.Employee {
	out := make([]*domain.Employee, 0, len(rows))
	for i := range rows {
		out = append(out, employeeFromRow(&rows[i]))
	}
	return out
}
