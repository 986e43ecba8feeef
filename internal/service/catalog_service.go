package service

import (
	"context"
	"fmt"
	"log"

	"cyberassess/internal/cache"
	"cyberassess/internal/model"
	"cyberassess/internal/repository"
)

// CatalogService reads the question catalog and applies admin order updates.
// Reads go through the Redis catalog cache; every catalog write busts it.
type CatalogService struct {
	categoryRepo repository.CategoryRepo
	questionRepo repository.QuestionRepo
	catalogCache cache.CatalogCache
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	categoryRepo repository.CategoryRepo,
	questionRepo repository.QuestionRepo,
	catalogCache cache.CatalogCache,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		catalogCache: catalogCache,
	}
}

// ListCategories returns all categories in display order
func (s *CatalogService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	if s.catalogCache != nil {
		if cached, err := s.catalogCache.GetCategories(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.SetCategories(ctx, categories); err != nil {
			log.Printf("catalog cache write failed: %v", err)
		}
	}
	return categories, nil
}

// ListQuestions returns questions in presentation order, optionally for one category
func (s *CatalogService) ListQuestions(ctx context.Context, categoryID string) ([]*model.Question, error) {
	if s.catalogCache != nil {
		if cached, err := s.catalogCache.GetQuestions(ctx, categoryID); err == nil && cached != nil {
			return cached, nil
		}
	}

	questions, err := s.questionRepo.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.SetQuestions(ctx, categoryID, questions); err != nil {
			log.Printf("catalog cache write failed: %v", err)
		}
	}
	return questions, nil
}

// SaveQuestionOrder applies a drag-and-drop reorder payload. Each (id, order)
// pair is applied scoped to its stated category id; pairs naming a question
// outside that category match nothing and are silently skipped, like the rest
// of the admin UI treats stale drags.
func (s *CatalogService) SaveQuestionOrder(ctx context.Context, payload model.QuestionOrderPayload) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: empty payload", ErrValidation)
	}

	// Validate the whole payload before touching anything: a rejected payload
	// must not leave a partially reordered category behind.
	for categoryID, items := range payload {
		if categoryID == "" {
			return fmt.Errorf("%w: missing category id", ErrValidation)
		}
		for _, item := range items {
			if item.ID == "" {
				return fmt.Errorf("%w: missing question id", ErrValidation)
			}
		}
	}

	for categoryID, items := range payload {
		for _, item := range items {
			if err := s.questionRepo.UpdateOrder(ctx, item.ID, categoryID, item.Order); err != nil {
				return fmt.Errorf("failed to update order for question %s: %w", item.ID, err)
			}
		}
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.Invalidate(ctx); err != nil {
			log.Printf("catalog cache invalidation failed: %v", err)
		}
	}
	return nil
}
