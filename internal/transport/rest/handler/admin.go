package handler

import (
	"encoding/json"
	"net/http"

	"cyberassess/internal/model"
	"cyberassess/internal/service"
)

// maxImportSize caps catalog uploads at 8 MiB
const maxImportSize = 8 << 20

// AdminHandler handles administrative catalog endpoints
type AdminHandler struct {
	catalogSvc *service.CatalogService
	importSvc  *service.ImportService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalogSvc *service.CatalogService, importSvc *service.ImportService) *AdminHandler {
	return &AdminHandler{
		catalogSvc: catalogSvc,
		importSvc:  importSvc,
	}
}

// SaveQuestionOrder handles POST /v1/admin/questions/order with a payload of
// {categoryId: [{id, order}, ...]}. Malformed JSON or missing fields yield a
// structured 400, never a crash.
func (h *AdminHandler) SaveQuestionOrder(w http.ResponseWriter, r *http.Request) {
	var payload model.QuestionOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.catalogSvc.SaveQuestionOrder(r.Context(), payload); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// ImportCatalog handles POST /v1/admin/import with a multipart "file" field
// holding the catalog CSV. Per-row failures are reported in the response, not
// as an overall error.
func (h *AdminHandler) ImportCatalog(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	result, err := h.importSvc.ImportCatalog(r.Context(), file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
