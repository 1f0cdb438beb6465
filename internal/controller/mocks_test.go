package controller

import (
	"context"
	"sync"

	"github.com/gartstein/employees/internal/events"
	"github.com/gartstein/employees/internal/models"
)

// MockCompanyRepository implements CompanyRepository for testing.
type MockCompanyRepository struct {
	findAll    func(context.Context) ([]*models.Company, error)
	findPage   func(context.Context, int, int) (*models.Page[*models.Company], error)
	findByID   func(context.Context, string) (*models.Company, error)
	existsByID func(context.Context, string) (bool, error)
	create     func(context.Context, *models.Company) error
	update     func(context.Context, *models.Company) error
	delete     func(context.Context, string) (bool, error)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context) ([]*models.Company, error) {
	return m.findAll(ctx)
}

func (m *MockCompanyRepository) FindPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Company], error) {
	return m.findPage(ctx, page, pageSize)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*models.Company, error) {
	return m.findByID(ctx, id)
}

func (m *MockCompanyRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return m.existsByID(ctx, id)
}

func (m *MockCompanyRepository) Create(ctx context.Context, c *models.Company) error {
	return m.create(ctx, c)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *models.Company) error {
	return m.update(ctx, c)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id string) (bool, error) {
	return m.delete(ctx, id)
}

// MockEmployeeRepository implements EmployeeRepository for testing.
type MockEmployeeRepository struct {
	findAll         func(context.Context) ([]*models.Employee, error)
	findPage        func(context.Context, int, int) (*models.Page[*models.Employee], error)
	findByID        func(context.Context, string) (*models.Employee, error)
	findByGender    func(context.Context, string) ([]*models.Employee, error)
	findByCompanyID func(context.Context, string) ([]*models.Employee, error)
	existsByID      func(context.Context, string) (bool, error)
	create          func(context.Context, *models.Employee) error
	update          func(context.Context, *models.Employee) error
	delete          func(context.Context, string) (bool, error)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context) ([]*models.Employee, error) {
	return m.findAll(ctx)
}

func (m *MockEmployeeRepository) FindPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Employee], error) {
	return m.findPage(ctx, page, pageSize)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	return m.findByID(ctx, id)
}

func (m *MockEmployeeRepository) FindByGender(ctx context.Context, gender string) ([]*models.Employee, error) {
	return m.findByGender(ctx, gender)
}

func (m *MockEmployeeRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*models.Employee, error) {
	return m.findByCompanyID(ctx, companyID)
}

func (m *MockEmployeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return m.existsByID(ctx, id)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, emp *models.Employee) error {
	return m.create(ctx, emp)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, emp *models.Employee) error {
	return m.update(ctx, emp)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) (bool, error) {
	return m.delete(ctx, id)
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []events.Event
}

// Produce records the event.
func (m *MockProducer) Produce(event events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.producedEvents = append(m.producedEvents, event)
}

func (m *MockProducer) Events() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]events.Event(nil), m.producedEvents...)
}
