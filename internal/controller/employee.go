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

// EmployeeService provides methods to manage employees via repository
// operations and event production.
type EmployeeService struct {
	repo     EmployeeRepository
	producer EventProducer
	logger   *zap.Logger
}

// NewEmployeeService constructs an EmployeeService with a repository,
// an event producer, and a logger.
func NewEmployeeService(repo EmployeeRepository, producer EventProducer, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("employee_service"),
	}
}

// GetAll returns every employee in insertion order.
func (s *EmployeeService) GetAll(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetPage returns one page of employees. Bounds are the caller's concern.
func (s *EmployeeService) GetPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Employee], error) {
	result, err := s.repo.FindPage(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to page employees: %w", err)
	}
	return result, nil
}

// GetByGender returns the employees whose gender equals the argument exactly.
func (s *EmployeeService) GetByGender(ctx context.Context, gender string) ([]*models.Employee, error) {
	employees, err := s.repo.FindByGender(ctx, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to filter employees by gender: %w", err)
	}
	return employees, nil
}

// GetOne retrieves an Employee by ID, returning ErrNotFound if it is absent.
func (s *EmployeeService) GetOne(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.EmployeeNotFound(id)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// Create stores a new Employee; the repository assigns its ID.
func (s *EmployeeService) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if employee == nil {
		return nil, fmt.Errorf("%w: employee data required", e.ErrInvalidInput)
	}
	employee.ID = ""
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	s.publish(events.EmployeeCreated, employee.ID, employee)
	return employee, nil
}

// Update replaces every field of an existing Employee except its ID.
func (s *EmployeeService) Update(ctx context.Context, id string, employee *models.Employee) (*models.Employee, error) {
	if employee == nil {
		return nil, fmt.Errorf("%w: employee data required", e.ErrInvalidInput)
	}
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return nil, e.EmployeeNotFound(id)
	}

	employee.ID = id
	if err := s.repo.Update(ctx, employee); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.EmployeeNotFound(id)
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	s.publish(events.EmployeeUpdated, id, employee)
	return employee, nil
}

// Delete removes an Employee by ID. Deleting an absent employee succeeds.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if removed {
		s.publish(events.EmployeeDeleted, id, nil)
	}
	return nil
}

func (s *EmployeeService) publish(eventType events.EventType, id string, employee *models.Employee) {
	event := events.Event{Type: eventType, EntityID: id}
	if employee != nil {
		snapshot := *employee
		event.Employee = &snapshot
	}
	s.producer.Produce(event)
	s.logger.Debug("employee event queued",
		zap.String("event_type", string(eventType)),
		zap.String("employee_id", id),
	)
}
