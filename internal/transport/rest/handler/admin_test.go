package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveQuestionOrderRejectsMalformedJSON(t *testing.T) {
	h := NewAdminHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/questions/order", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.SaveQuestionOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON payload")
}

func TestSaveQuestionOrderRejectsNonObjectPayload(t *testing.T) {
	h := NewAdminHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/questions/order", strings.NewReader(`"just a string"`))
	rec := httptest.NewRecorder()

	h.SaveQuestionOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportCatalogRejectsNonMultipartBody(t *testing.T) {
	h := NewAdminHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/import", strings.NewReader("category,weight"))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()

	h.ImportCatalog(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
