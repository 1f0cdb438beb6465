package controller

import (
	"context"
	"errors"
	"fmt"

	e "github.com/gartstein/employees/internal/errors"
	"github.com/gartstein/employees/internal/events"
	"github.com/gartstein/employees/internal/models"
	"go.uber.org/zap"
)

// CompanyService provides methods to manage companies via repository
// operations and event production.
type CompanyService struct {
	companies CompanyRepository
	employees EmployeeRepository
	producer  EventProducer
	logger    *zap.Logger
}

// NewCompanyService constructs a CompanyService. The employee repository
// serves the nested employees-of-company lookup.
func NewCompanyService(
	companies CompanyRepository,
	employees EmployeeRepository,
	producer EventProducer,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companies: companies,
		employees: employees,
		producer:  producer,
		logger:    logger.Named("company_service"),
	}
}

// GetAll returns every company in insertion order.
func (s *CompanyService) GetAll(ctx context.Context) ([]*models.Company, error) {
	companies, err := s.companies.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// GetPage returns one page of companies. Bounds are the caller's concern.
func (s *CompanyService) GetPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Company], error) {
	result, err := s.companies.FindPage(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to page companies: %w", err)
	}
	return result, nil
}

// GetOne retrieves a Company by ID, returning ErrNotFound if it is absent.
func (s *CompanyService) GetOne(ctx context.Context, id string) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.CompanyNotFound(id)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// GetEmployees lists the employees of an existing company.
func (s *CompanyService) GetEmployees(ctx context.Context, companyID string) ([]*models.Employee, error) {
	if err := s.ensureExists(ctx, companyID); err != nil {
		return nil, err
	}
	employees, err := s.employees.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company employees: %w", err)
	}
	return employees, nil
}

// Create stores a new Company; the repository assigns its ID.
func (s *CompanyService) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	if err := validateCompany(company); err != nil {
		return nil, err
	}
	company.ID = ""
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	s.publish(events.CompanyCreated, company.ID, company)
	return company, nil
}

// Update replaces every field of an existing Company except its ID.
func (s *CompanyService) Update(ctx context.Context, id string, company *models.Company) (*models.Company, error) {
	if err := validateCompany(company); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	company.ID = id
	if err := s.companies.Update(ctx, company); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.CompanyNotFound(id)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	s.publish(events.CompanyUpdated, id, company)
	return company, nil
}

// Delete removes a Company by ID. Deleting an absent company succeeds.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	removed, err := s.companies.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if removed {
		s.publish(events.CompanyDeleted, id, nil)
	}
	return nil
}

func (s *CompanyService) ensureExists(ctx context.Context, id string) error {
	exists, err := s.companies.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check company existence: %w", err)
	}
	if !exists {
		return e.CompanyNotFound(id)
	}
	return nil
}

func (s *CompanyService) publish(eventType events.EventType, id string, company *models.Company) {
	event := events.Event{Type: eventType, EntityID: id}
	if company != nil {
		snapshot := *company
		event.Company = &snapshot
	}
	s.producer.Produce(event)
	s.logger.Debug("company event queued",
		zap.String("event_type", string(eventType)),
		zap.String("company_id", id),
	)
}

func validateCompany(company *models.Company) error {
	if company == nil {
		return fmt.Errorf("%w: company data required", e.ErrInvalidInput)
	}
	if company.EmployeesNumber < 0 {
		return fmt.Errorf("%w: employeesNumber must not be negative", e.ErrInvalidInput)
	}
	return nil
}
