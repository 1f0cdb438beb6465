package handlers

import (
	"context"
	"net/http"

	"github.com/gartstein/employees/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EmployeeController defines the business logic interface
// that the employee HTTP handlers invoke.
type EmployeeController interface {
	GetAll(ctx context.Context) ([]*models.Employee, error)
	GetPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Employee], error)
	GetByGender(ctx context.Context, gender string) ([]*models.Employee, error)
	GetOne(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, id string, employee *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeHandler serves the /employees resource.
type EmployeeHandler struct {
	service EmployeeController
	logger  *zap.Logger
}

func NewEmployeeHandler(service EmployeeController, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		logger:  logger.Named("employee_handler"),
	}
}

// Routes mounts the employee endpoints on r.
func (h *EmployeeHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List dispatches on the query string: a gender filter wins over paging,
// and with neither the full list is returned.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query(); q.Has("gender") {
		employees, err := h.service.GetByGender(r.Context(), q.Get("gender"))
		if err != nil {
			mapServiceError(w, h.logger, err)
			return
		}
		writeJSON(w, http.StatusOK, mapSlice(employees, employeeToResponse))
		return
	}

	page, pageSize, paged, err := pageQuery(r)
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	if paged {
		result, err := h.service.GetPage(r.Context(), page, pageSize)
		if err != nil {
			mapServiceError(w, h.logger, err)
			return
		}
		writeJSON(w, http.StatusOK, toPageResponse(result, employeeToResponse))
		return
	}

	employees, err := h.service.GetAll(r.Context())
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(employees, employeeToResponse))
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.service.GetOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, employeeToResponse(employee))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeBody(w, r, &req); err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	created, err := h.service.Create(r.Context(), req.toModel())
	if err != nil {
		h.logger.Error("Create employee failed", zap.Error(err))
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, employeeToResponse(created))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeBody(w, r, &req); err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, employeeToResponse(updated))
}

// Delete is idempotent: removing an unknown id still answers 204.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
