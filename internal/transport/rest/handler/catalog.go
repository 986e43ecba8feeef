package handler

import (
	"net/http"

	"cyberassess/internal/repository"
	"cyberassess/internal/service"
)

// CatalogHandler serves the pick lists the assessment UI needs
type CatalogHandler struct {
	catalogSvc   *service.CatalogService
	customerRepo repository.CustomerRepo
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc *service.CatalogService, customerRepo repository.CustomerRepo) *CatalogHandler {
	return &CatalogHandler{
		catalogSvc:   catalogSvc,
		customerRepo: customerRepo,
	}
}

// ListCategories handles GET /v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogSvc.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// ListCustomers handles GET /v1/customers
func (h *CatalogHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, customers)
}
