package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"cyberassess/internal/model"
	"cyberassess/internal/service"
	"cyberassess/internal/transport/rest/middleware"
)

// AssessmentHandler handles the assessment flow: start/resume, question
// sequencing, answer recording, summary and export
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	answerSvc     *service.AnswerService
	scoreSvc      *service.ScoreService
	exportSvc     *service.ExportService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(
	assessmentSvc *service.AssessmentService,
	answerSvc *service.AnswerService,
	scoreSvc *service.ScoreService,
	exportSvc *service.ExportService,
) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		answerSvc:     answerSvc,
		scoreSvc:      scoreSvc,
		exportSvc:     exportSvc,
	}
}

// Start handles POST /v1/assessments
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerID == "" {
		writeError(w, http.StatusBadRequest, "customerId is required")
		return
	}

	employeeID := middleware.GetEmployeeID(r.Context())
	resp, err := h.assessmentSvc.Start(r.Context(), req.CustomerID, employeeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusCreated
	if resp.Resumed {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

// NextQuestion handles GET /v1/assessments/{id}/question/next
// Query params: category (filter), previous (review an answered question).
func (h *AssessmentHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]
	categoryID := r.URL.Query().Get("category")
	previousID := r.URL.Query().Get("previous")

	next, err := h.assessmentSvc.NextQuestion(r.Context(), assessmentID, categoryID, previousID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, next)
}

// RecordAnswer handles POST /v1/assessments/{id}/answers
func (h *AssessmentHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]

	var req model.RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	answer, err := h.answerSvc.Record(r.Context(), assessmentID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// Summary handles GET /v1/assessments/{id}/summary
func (h *AssessmentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]

	if _, err := h.assessmentSvc.GetByID(r.Context(), assessmentID); err != nil {
		writeServiceError(w, err)
		return
	}

	report, err := h.scoreSvc.ScoreAssessment(r.Context(), assessmentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Export handles GET /v1/assessments/{id}/export
func (h *AssessmentHandler) Export(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["id"]

	data, filename, err := h.exportSvc.ExportCSV(r.Context(), assessmentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
