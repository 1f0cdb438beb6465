package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gartstein/employees/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// mockCompanyController is a simple mock implementation of CompanyController.
type mockCompanyController struct {
	getAllFunc       func(ctx context.Context) ([]*models.Company, error)
	getPageFunc      func(ctx context.Context, page, pageSize int) (*models.Page[*models.Company], error)
	getOneFunc       func(ctx context.Context, id string) (*models.Company, error)
	getEmployeesFunc func(ctx context.Context, id string) ([]*models.Employee, error)
	createFunc       func(ctx context.Context, company *models.Company) (*models.Company, error)
	updateFunc       func(ctx context.Context, id string, company *models.Company) (*models.Company, error)
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockCompanyController) GetAll(ctx context.Context) ([]*models.Company, error) {
	return m.getAllFunc(ctx)
}

func (m *mockCompanyController) GetPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Company], error) {
	return m.getPageFunc(ctx, page, pageSize)
}

func (m *mockCompanyController) GetOne(ctx context.Context, id string) (*models.Company, error) {
	return m.getOneFunc(ctx, id)
}

func (m *mockCompanyController) GetEmployees(ctx context.Context, id string) ([]*models.Employee, error) {
	return m.getEmployeesFunc(ctx, id)
}

func (m *mockCompanyController) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	return m.createFunc(ctx, company)
}

func (m *mockCompanyController) Update(ctx context.Context, id string, company *models.Company) (*models.Company, error) {
	return m.updateFunc(ctx, id, company)
}

func (m *mockCompanyController) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

// mockEmployeeController is a simple mock implementation of EmployeeController.
type mockEmployeeController struct {
	getAllFunc      func(ctx context.Context) ([]*models.Employee, error)
	getPageFunc     func(ctx context.Context, page, pageSize int) (*models.Page[*models.Employee], error)
	getByGenderFunc func(ctx context.Context, gender string) ([]*models.Employee, error)
	getOneFunc      func(ctx context.Context, id string) (*models.Employee, error)
	createFunc      func(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	updateFunc      func(ctx context.Context, id string, employee *models.Employee) (*models.Employee, error)
	deleteFunc      func(ctx context.Context, id string) error
}

func (m *mockEmployeeController) GetAll(ctx context.Context) ([]*models.Employee, error) {
	return m.getAllFunc(ctx)
}

func (m *mockEmployeeController) GetPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Employee], error) {
	return m.getPageFunc(ctx, page, pageSize)
}

func (m *mockEmployeeController) GetByGender(ctx context.Context, gender string) ([]*models.Employee, error) {
	return m.getByGenderFunc(ctx, gender)
}

func (m *mockEmployeeController) GetOne(ctx context.Context, id string) (*models.Employee, error) {
	return m.getOneFunc(ctx, id)
}

func (m *mockEmployeeController) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	return m.createFunc(ctx, employee)
}

func (m *mockEmployeeController) Update(ctx context.Context, id string, employee *models.Employee) (*models.Employee, error) {
	return m.updateFunc(ctx, id, employee)
}

func (m *mockEmployeeController) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

// newTestHandler wires both controllers into a fresh router.
func newTestHandler(t *testing.T, companies CompanyController, employees EmployeeController) http.Handler {
	t.Helper()
	logger := zaptest.NewLogger(t)
	s := NewServer(0, logger)
	s.RegisterCompanyHandler(NewCompanyHandler(companies, logger))
	s.RegisterEmployeeHandler(NewEmployeeHandler(employees, logger))
	return s.Handler()
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
