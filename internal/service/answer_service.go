package service

import (
	"context"
	"fmt"
	"log"

	"cyberassess/internal/cache"
	"cyberassess/internal/model"
	"cyberassess/internal/repository"
)

// AnswerService records answers with upsert semantics
type AnswerService struct {
	answerRepo     repository.AnswerRepo
	assessmentRepo repository.AssessmentRepo
	questionRepo   repository.QuestionRepo
	inputRepo      repository.InputRepo
	reportCache    cache.ReportCache
}

// NewAnswerService creates a new answer service
func NewAnswerService(
	answerRepo repository.AnswerRepo,
	assessmentRepo repository.AssessmentRepo,
	questionRepo repository.QuestionRepo,
	inputRepo repository.InputRepo,
	reportCache cache.ReportCache,
) *AnswerService {
	return &AnswerService{
		answerRepo:     answerRepo,
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		inputRepo:      inputRepo,
		reportCache:    reportCache,
	}
}

// Record upserts the single answer for (assessment, question). The recorder
// is deliberately tolerant: empty text with no selected option is a legal
// skip, and an option id that no longer resolves in the catalog is stored as
// no selection rather than rejected. The sequencer may route the employee
// back to an answered question, so a repeat submission overwrites the
// existing row, latest write wins.
//
// No score is computed or stored here; scoring reads the current catalog
// metadata at report time.
func (s *AnswerService) Record(ctx context.Context, assessmentID string, req *model.RecordAnswerRequest) (*model.Answer, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, assessmentID)
	if err != nil || assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	question, err := s.questionRepo.GetByID(ctx, req.QuestionID)
	if err != nil || question == nil {
		return nil, ErrQuestionNotFound
	}

	selectedID := ""
	if req.SelectedInputID != "" {
		input, err := s.inputRepo.GetByID(ctx, req.SelectedInputID)
		if err == nil && input != nil {
			selectedID = input.ID
		}
	}

	answer := &model.Answer{
		AssessmentID:    assessmentID,
		QuestionID:      question.ID,
		AnswerText:      req.AnswerText,
		SelectedInputID: selectedID,
		FlagRequired:    req.FlagRequired,
		Note:            req.Note,
	}

	saved, err := s.answerRepo.Upsert(ctx, answer)
	if err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	if s.reportCache != nil {
		if err := s.reportCache.Invalidate(ctx, assessmentID); err != nil {
			log.Printf("report cache invalidation failed for assessment %s: %v", assessmentID, err)
		}
	}

	return saved, nil
}
