package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	e "github.com/gartstein/employees/internal/errors"
	"github.com/gartstein/employees/internal/models"
	"github.com/gartstein/employees/internal/pkg/pagination"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type companyRequest struct {
	CompanyName     string `json:"companyName"`
	EmployeesNumber int    `json:"employeesNumber"`
}

type companyResponse struct {
	CompanyID       string `json:"companyId"`
	CompanyName     string `json:"companyName"`
	EmployeesNumber int    `json:"employeesNumber"`
}

type employeeRequest struct {
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Salary    float64 `json:"salary"`
	CompanyID string  `json:"companyId"`
}

type employeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Salary    float64 `json:"salary"`
	CompanyID string  `json:"companyId"`
}

// pageResponse is the JSON envelope for a paged listing.
type pageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (r *companyRequest) toModel() *models.Company {
	return &models.Company{
		Name:            r.CompanyName,
		EmployeesNumber: r.EmployeesNumber,
	}
}

func (r *employeeRequest) toModel() *models.Employee {
	return &models.Employee{
		Name:      r.Name,
		Age:       r.Age,
		Gender:    r.Gender,
		Salary:    r.Salary,
		CompanyID: r.CompanyID,
	}
}

func companyToResponse(c *models.Company) companyResponse {
	return companyResponse{
		CompanyID:       c.ID,
		CompanyName:     c.Name,
		EmployeesNumber: c.EmployeesNumber,
	}
}

func employeeToResponse(emp *models.Employee) employeeResponse {
	return employeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Age:       emp.Age,
		Gender:    emp.Gender,
		Salary:    emp.Salary,
		CompanyID: emp.CompanyID,
	}
}

func mapSlice[S, T any](in []S, conv func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, item := range in {
		out = append(out, conv(item))
	}
	return out
}

func toPageResponse[S, T any](p *models.Page[S], conv func(S) T) pageResponse[T] {
	return pageResponse[T]{
		Content:       mapSlice(p.Content, conv),
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// decodeBody reads a JSON request body into dst. Any decoding failure is
// reported as invalid input.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("malformed request body: %v: %w", err, e.ErrInvalidInput)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusName turns 404 into NOT_FOUND and so on.
func statusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Message: message, Status: statusName(code)})
}

// mapServiceError maps domain or repository errors to HTTP responses.
func mapServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, e.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Internal server error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pageQuery reports whether the request asks for a page, and which one.
// Paging is selected only when both page and pageSize are present.
func pageQuery(r *http.Request) (page, pageSize int, paged bool, err error) {
	q := r.URL.Query()
	if !q.Has("page") || !q.Has("pageSize") {
		return 0, 0, false, nil
	}
	if page, err = strconv.Atoi(q.Get("page")); err != nil {
		return 0, 0, true, fmt.Errorf("page must be an integer: %w", e.ErrInvalidInput)
	}
	if pageSize, err = strconv.Atoi(q.Get("pageSize")); err != nil {
		return 0, 0, true, fmt.Errorf("pageSize must be an integer: %w", e.ErrInvalidInput)
	}
	if err = pagination.Validate(page, pageSize); err != nil {
		return 0, 0, true, err
	}
	return page, pageSize, true, nil
}
