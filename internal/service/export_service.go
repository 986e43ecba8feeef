package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"cyberassess/internal/repository"
)

// ExportService serializes an assessment's answers to CSV
type ExportService struct {
	assessmentRepo repository.AssessmentRepo
	customerRepo   repository.CustomerRepo
	scoreSvc       *ScoreService
}

// NewExportService creates a new export service
func NewExportService(
	assessmentRepo repository.AssessmentRepo,
	customerRepo repository.CustomerRepo,
	scoreSvc *ScoreService,
) *ExportService {
	return &ExportService{
		assessmentRepo: assessmentRepo,
		customerRepo:   customerRepo,
		scoreSvc:       scoreSvc,
	}
}

// exportHeader is fixed; downstream spreadsheets key on these columns
var exportHeader = []string{"Category", "Question", "Answer", "Notes"}

// ExportCSV renders one row per recorded answer, in answer insertion order
// (unanswered questions are omitted, rows are not re-sorted by category).
// The display-answer rule matches the on-screen summary. Returns the CSV
// bytes and the suggested attachment filename.
func (s *ExportService) ExportCSV(ctx context.Context, assessmentID string) ([]byte, string, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil || assessment == nil {
		return nil, "", ErrAssessmentNotFound
	}

	customerName := "Customer"
	customer, err := s.customerRepo.GetByID(ctx, assessment.CustomerID)
	if err == nil && customer != nil {
		customerName = customer.Name
	}

	report, err := s.scoreSvc.ScoreAssessment(ctx, assessmentID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, "", err
	}
	for _, line := range report.Answers {
		if err := w.Write([]string{line.Category, line.Question, line.DisplayAnswer, line.Note}); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Assessment_Summary_%s.csv", sanitizeFilename(customerName))
	return buf.Bytes(), filename, nil
}

// sanitizeFilename keeps the attachment name safe for Content-Disposition
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", "\"", "", ",", "")
	return replacer.Replace(name)
}
