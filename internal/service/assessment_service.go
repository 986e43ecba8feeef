package service

import (
	"context"
	"fmt"
	"time"

	"cyberassess/internal/model"
	"cyberassess/internal/repository"
)

// AssessmentService starts/resumes assessments and sequences their questions
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepo
	customerRepo   repository.CustomerRepo
	questionRepo   repository.QuestionRepo
	answerRepo     repository.AnswerRepo
	optionRepo     repository.OptionRepo
	inputRepo      repository.InputRepo
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	assessmentRepo repository.AssessmentRepo,
	customerRepo repository.CustomerRepo,
	questionRepo repository.QuestionRepo,
	answerRepo repository.AnswerRepo,
	optionRepo repository.OptionRepo,
	inputRepo repository.InputRepo,
) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		customerRepo:   customerRepo,
		questionRepo:   questionRepo,
		answerRepo:     answerRepo,
		optionRepo:     optionRepo,
		inputRepo:      inputRepo,
	}
}

// Start resumes the in_progress assessment for (customer, employee) or
// creates one. It never forks a second in-progress run for the same pair.
func (s *AssessmentService) Start(ctx context.Context, customerID, employeeID string) (*model.StartAssessmentResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	assessment, resumed, err := s.assessmentRepo.GetOrCreateInProgress(ctx, customerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to start assessment: %w", err)
	}
	return &model.StartAssessmentResponse{Assessment: assessment, Resumed: resumed}, nil
}

// GetByID returns an assessment or ErrAssessmentNotFound
func (s *AssessmentService) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAssessmentNotFound
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// NextQuestion decides what the employee sees next. A previousQuestionID
// means the employee navigated back to review an answered question, so it is
// returned regardless of answered state. Otherwise the first unanswered
// question in (order, id) sequence wins, optionally within one category.
//
// Read-only with one exception: when no category filter is active and every
// question has an answer, the assessment's derived terminal state is persisted
// before reporting done. Repeated calls with an unchanged answered set always
// return the same question.
func (s *AssessmentService) NextQuestion(ctx context.Context, assessmentID, categoryID, previousQuestionID string) (*model.NextQuestion, error) {
	assessment, err := s.GetByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	progress, err := s.progress(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	if previousQuestionID != "" {
		question, err := s.questionRepo.GetByID(ctx, previousQuestionID)
		if err != nil || question == nil {
			return nil, ErrQuestionNotFound
		}
		return s.present(ctx, question, progress)
	}

	answered, err := s.answerRepo.AnsweredQuestionIDs(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answered set: %w", err)
	}

	question, err := s.questionRepo.FirstUnanswered(ctx, categoryID, answered)
	if err != nil {
		return nil, fmt.Errorf("failed to find next question: %w", err)
	}

	if question == nil {
		if categoryID != "" {
			// The category is exhausted but other categories may not be; the
			// caller redirects rather than closing the assessment.
			return &model.NextQuestion{Done: false, CategoryDone: true, Progress: progress}, nil
		}
		if assessment.Status == model.AssessmentStatusInProgress {
			if err := s.assessmentRepo.MarkCompleted(ctx, assessmentID, time.Now()); err != nil {
				return nil, fmt.Errorf("failed to complete assessment: %w", err)
			}
		}
		return &model.NextQuestion{Done: true, Progress: progress}, nil
	}

	return s.present(ctx, question, progress)
}

func (s *AssessmentService) present(ctx context.Context, question *model.Question, progress model.Progress) (*model.NextQuestion, error) {
	options, err := s.optionViews(ctx, question.ID)
	if err != nil {
		return nil, err
	}
	return &model.NextQuestion{
		Question: question,
		Options:  options,
		Progress: progress,
	}, nil
}

// optionViews joins a question's option links with their input texts. Links
// pointing at a missing catalog entry are dropped rather than failing the
// question screen.
func (s *AssessmentService) optionViews(ctx context.Context, questionID string) ([]model.OptionView, error) {
	links, err := s.optionRepo.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	views := make([]model.OptionView, 0, len(links))
	for _, link := range links {
		input, err := s.inputRepo.GetByID(ctx, link.InputID)
		if err != nil || input == nil {
			continue
		}
		views = append(views, model.OptionView{
			InputID:     input.ID,
			Text:        input.Text,
			Description: input.Description,
		})
	}
	return views, nil
}

func (s *AssessmentService) progress(ctx context.Context, assessmentID string) (model.Progress, error) {
	total, err := s.questionRepo.Count(ctx, "")
	if err != nil {
		return model.Progress{}, err
	}
	answered, err := s.answerRepo.CountByAssessment(ctx, assessmentID)
	if err != nil {
		return model.Progress{}, err
	}

	current := int(answered) + 1
	if current > int(total) {
		current = int(total)
	}
	return model.Progress{
		CurrentNumber:  current,
		AnsweredCount:  int(answered),
		TotalQuestions: int(total),
	}, nil
}
