package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"cyberassess/internal/cache"
	"cyberassess/internal/model"
	"cyberassess/internal/repository"
)

// uncategorizedLabel is the fallback bucket for answers whose question has no
// resolvable category. The model makes that impossible in theory; scoring
// still has to produce a report when catalog data is incomplete.
const uncategorizedLabel = "Uncategorized"

// ScoreService computes score reports. Scoring is preferred/non-preferred:
// answering a question with a preferred option contributes 0, any other
// answer (non-preferred option, missing option link, or free input) scores
// the question's weight as a gap. Neutral questions never contribute.
type ScoreService struct {
	answerRepo   repository.AnswerRepo
	questionRepo repository.QuestionRepo
	categoryRepo repository.CategoryRepo
	optionRepo   repository.OptionRepo
	inputRepo    repository.InputRepo
	productRepo  repository.ProductRepo
	reportCache  cache.ReportCache
}

// NewScoreService creates a new score service
func NewScoreService(
	answerRepo repository.AnswerRepo,
	questionRepo repository.QuestionRepo,
	categoryRepo repository.CategoryRepo,
	optionRepo repository.OptionRepo,
	inputRepo repository.InputRepo,
	productRepo repository.ProductRepo,
	reportCache cache.ReportCache,
) *ScoreService {
	return &ScoreService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		optionRepo:   optionRepo,
		inputRepo:    inputRepo,
		productRepo:  productRepo,
		reportCache:  reportCache,
	}
}

// ScoreAssessment builds the full score report for an assessment. It is a
// pure function of the stored answers and catalog rows; the cached copy is
// invalidated on every answer write, so a hit is always current.
func (s *ScoreService) ScoreAssessment(ctx context.Context, assessmentID string) (*model.ScoreReport, error) {
	if s.reportCache != nil {
		if cached, err := s.reportCache.Get(ctx, assessmentID); err == nil && cached != nil {
			return cached, nil
		}
	}

	answers, err := s.answerRepo.GetByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	report := &model.ScoreReport{
		AssessmentID: assessmentID,
		PerCategory:  []model.CategoryScore{},
		Answers:      []model.AnswerLine{},
	}
	categoryIndex := map[string]int{}
	seenProducts := map[string]bool{}

	for _, answer := range answers {
		question, err := s.questionRepo.GetByID(ctx, answer.QuestionID)
		if err != nil || question == nil {
			// The question was deleted after the answer was recorded; the
			// report must still come out, so the row is skipped.
			continue
		}

		categoryName := uncategorizedLabel
		if question.CategoryID != "" {
			category, err := s.categoryRepo.GetByID(ctx, question.CategoryID)
			if err == nil && category != nil {
				categoryName = category.Name
			}
		}

		var link *model.QuestionOption
		if answer.SelectedInputID != "" {
			link, _ = s.optionRepo.GetByQuestionAndInput(ctx, question.ID, answer.SelectedInputID)
		}

		contribution := contribution(question, answer, link)
		report.Total += contribution
		report.MaxTotal += maxContribution(question)

		idx, ok := categoryIndex[categoryName]
		if !ok {
			idx = len(report.PerCategory)
			categoryIndex[categoryName] = idx
			report.PerCategory = append(report.PerCategory, model.CategoryScore{Category: categoryName})
		}
		report.PerCategory[idx].Score += contribution

		report.Answers = append(report.Answers, model.AnswerLine{
			QuestionID:    question.ID,
			Question:      question.Text,
			Category:      categoryName,
			DisplayAnswer: s.displayAnswer(ctx, answer),
			Note:          answer.Note,
			Contribution:  contribution,
		})

		// A gap answer pulls in the question's recommended product once.
		if contribution > 0 && question.RecommendedProductID != "" && !seenProducts[question.RecommendedProductID] {
			seenProducts[question.RecommendedProductID] = true
			product, err := s.productRepo.GetByID(ctx, question.RecommendedProductID)
			if err == nil && product != nil {
				report.Recommendations = append(report.Recommendations, model.Recommendation{
					ProductID:  product.ID,
					Name:       product.Name,
					ItemNumber: product.ItemNumber,
					UnitType:   product.UnitType,
				})
			}
		}
	}

	report.Radar = normalizeRadar(report.PerCategory)

	if s.reportCache != nil {
		if err := s.reportCache.Set(ctx, report); err != nil {
			log.Printf("report cache write failed for assessment %s: %v", assessmentID, err)
		}
	}

	return report, nil
}

// displayAnswer resolves the transcript text for one answer: answer text if
// present, else the selected option's catalog text, else a fixed placeholder.
func (s *ScoreService) displayAnswer(ctx context.Context, answer *model.Answer) string {
	if answer.AnswerText != "" {
		return answer.AnswerText
	}
	if answer.SelectedInputID != "" {
		input, err := s.inputRepo.GetByID(ctx, answer.SelectedInputID)
		if err == nil && input != nil {
			return input.Text
		}
	}
	return model.NoAnswerText
}

// contribution is the per-answer gap score under preferred/non-preferred
// semantics. A preferred option scores 0; any other option answer scores the
// weight, including a selected option with no link row (treated as
// non-preferred). Free input and count answers contribute the weight
// unconditionally.
func contribution(question *model.Question, answer *model.Answer, link *model.QuestionOption) int {
	if question.Neutral {
		return 0
	}
	if answer.SelectedInputID != "" {
		if link != nil && link.Preferred {
			return 0
		}
		return question.Weight
	}
	return question.Weight
}

// maxContribution is the worst case for one question independent of the
// recorded answer. Under preferred semantics every non-preferred path scores
// the weight, so the max is the weight itself (zero for neutral questions).
func maxContribution(question *model.Question) int {
	if question.Neutral {
		return 0
	}
	return question.Weight
}

// normalizeRadar linearly rescales raw category scores to the fixed chart
// scale. All-zero input yields all-zero output; label order follows the
// per-category insertion order.
func normalizeRadar(perCategory []model.CategoryScore) []model.RadarPoint {
	maxRaw := 0
	for _, cs := range perCategory {
		if cs.Score > maxRaw {
			maxRaw = cs.Score
		}
	}

	radar := make([]model.RadarPoint, 0, len(perCategory))
	for _, cs := range perCategory {
		value := 0
		if maxRaw > 0 {
			value = int(math.Round(float64(cs.Score) / float64(maxRaw) * model.RadarScale))
		}
		radar = append(radar, model.RadarPoint{Category: cs.Category, Value: value})
	}
	return radar
}
