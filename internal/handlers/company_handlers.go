package handlers

import (
	"context"
	"net/http"

	"github.com/gartstein/employees/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CompanyController defines the business logic interface
// that the company HTTP handlers invoke.
type CompanyController interface {
	GetAll(ctx context.Context) ([]*models.Company, error)
	GetPage(ctx context.Context, page, pageSize int) (*models.Page[*models.Company], error)
	GetOne(ctx context.Context, id string) (*models.Company, error)
	GetEmployees(ctx context.Context, companyID string) ([]*models.Employee, error)
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	Update(ctx context.Context, id string, company *models.Company) (*models.Company, error)
	Delete(ctx context.Context, id string) error
}

// CompanyHandler serves the /companies resource.
type CompanyHandler struct {
	service CompanyController
	logger  *zap.Logger
}

// NewCompanyHandler constructs a new CompanyHandler with the given service and logger.
func NewCompanyHandler(service CompanyController, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		logger:  logger.Named("company_handler"),
	}
}

// Routes mounts the company endpoints on r.
func (h *CompanyHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Get("/employees", h.ListEmployees)
	})
}

// List returns every company, or a single page when page and pageSize are given.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
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
		writeJSON(w, http.StatusOK, toPageResponse(result, companyToResponse))
		return
	}

	companies, err := h.service.GetAll(r.Context())
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(companies, companyToResponse))
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.service.GetOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, companyToResponse(company))
}

// ListEmployees returns the employees that belong to a company.
func (h *CompanyHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.GetEmployees(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(employees, employeeToResponse))
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeBody(w, r, &req); err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	created, err := h.service.Create(r.Context(), req.toModel())
	if err != nil {
		h.logger.Error("Create company failed", zap.Error(err))
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, companyToResponse(created))
}

// Update replaces the company's fields with the request body.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeBody(w, r, &req); err != nil {
		mapServiceError(w, h.logger, err)
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, companyToResponse(updated))
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		mapServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
