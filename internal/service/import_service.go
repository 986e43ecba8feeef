package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"cyberassess/internal/cache"
	"cyberassess/internal/model"
	"cyberassess/internal/repository"
)

// importColumns is the expected CSV header for bulk catalog uploads
var importColumns = []string{
	"category", "category_order", "question", "question_type", "weight",
	"neutral", "is_count", "count_type", "question_order", "options",
}

// ImportService loads categories, standardized inputs, questions and option
// links from one CSV upload. Row errors are collected, not fatal: one bad row
// never aborts the import.
type ImportService struct {
	categoryRepo repository.CategoryRepo
	questionRepo repository.QuestionRepo
	inputRepo    repository.InputRepo
	optionRepo   repository.OptionRepo
	catalogCache cache.CatalogCache
	reportCache  cache.ReportCache
}

// NewImportService creates a new import service
func NewImportService(
	categoryRepo repository.CategoryRepo,
	questionRepo repository.QuestionRepo,
	inputRepo repository.InputRepo,
	optionRepo repository.OptionRepo,
	catalogCache cache.CatalogCache,
	reportCache cache.ReportCache,
) *ImportService {
	return &ImportService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		inputRepo:    inputRepo,
		optionRepo:   optionRepo,
		catalogCache: catalogCache,
		reportCache:  reportCache,
	}
}

// ImportCatalog parses the upload and applies it row by row. Categories and
// standardized inputs are deduplicated by name/text, questions by
// (category, text), option links by (question, input), so re-uploading the
// same file is harmless.
func (s *ImportService) ImportCatalog(ctx context.Context, r io.Reader) (*model.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read CSV header", ErrValidation)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	result := &model.ImportResult{BatchID: "imp_" + uuid.New().String()[:8]}
	line := 1

	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, model.ImportRowError{Line: line, Message: err.Error()})
			continue
		}
		if err := s.importRow(ctx, record); err != nil {
			result.Errors = append(result.Errors, model.ImportRowError{Line: line, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.Invalidate(ctx); err != nil {
			log.Printf("catalog cache invalidation failed after import: %v", err)
		}
	}

	// An import can rewrite weights and option links, which are scoring
	// inputs for every cached report.
	if s.reportCache != nil {
		if err := s.reportCache.InvalidateAll(ctx); err != nil {
			log.Printf("report cache invalidation failed after import: %v", err)
		}
	}

	return result, nil
}

func validateHeader(header []string) error {
	if len(header) < len(importColumns) {
		return fmt.Errorf("%w: expected %d columns, got %d", ErrValidation, len(importColumns), len(header))
	}
	for i, want := range importColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return fmt.Errorf("%w: column %d must be %q", ErrValidation, i+1, want)
		}
	}
	return nil
}

func (s *ImportService) importRow(ctx context.Context, record []string) error {
	if len(record) < len(importColumns) {
		return fmt.Errorf("expected %d fields, got %d", len(importColumns), len(record))
	}

	categoryName := strings.TrimSpace(record[0])
	if categoryName == "" {
		return fmt.Errorf("category is required")
	}
	questionText := strings.TrimSpace(record[2])
	if questionText == "" {
		return fmt.Errorf("question is required")
	}

	questionType := model.QuestionType(strings.TrimSpace(record[3]))
	if !questionType.IsValid() {
		return fmt.Errorf("unknown question_type %q", record[3])
	}

	categoryOrder, err := parseIntField(record[1], "category_order")
	if err != nil {
		return err
	}
	weight, err := parseIntField(record[4], "weight")
	if err != nil {
		return err
	}
	if weight < 0 {
		return fmt.Errorf("weight must be >= 0")
	}
	neutral, err := parseBoolField(record[5], "neutral")
	if err != nil {
		return err
	}
	isCount, err := parseBoolField(record[6], "is_count")
	if err != nil {
		return err
	}
	questionOrder, err := parseIntField(record[8], "question_order")
	if err != nil {
		return err
	}

	category, err := s.categoryRepo.GetByName(ctx, categoryName)
	if err != nil {
		return err
	}
	if category == nil {
		category = &model.Category{Name: categoryName, Order: categoryOrder}
		if _, err := s.categoryRepo.Create(ctx, category); err != nil {
			return err
		}
	}

	question, err := s.questionRepo.GetByCategoryAndText(ctx, category.ID, questionText)
	if err != nil {
		return err
	}
	if question == nil {
		question = &model.Question{
			CategoryID:      category.ID,
			Text:            questionText,
			Type:            questionType,
			Weight:          weight,
			Neutral:         neutral,
			IsCountQuestion: isCount,
			CountType:       model.CountType(strings.TrimSpace(record[7])),
			Order:           questionOrder,
		}
		if _, err := s.questionRepo.Create(ctx, question); err != nil {
			return err
		}
	}

	return s.importOptions(ctx, question.ID, record[9])
}

// importOptions parses the options column: pipe-separated entries of
// text:score[:preferred], e.g. "Yes:0:preferred|No:5|Partially:3".
func (s *ImportService) importOptions(ctx context.Context, questionID, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, entry := range strings.Split(raw, "|") {
		parts := strings.Split(entry, ":")
		if len(parts) < 2 {
			return fmt.Errorf("malformed option %q", entry)
		}
		text := strings.TrimSpace(parts[0])
		if text == "" {
			return fmt.Errorf("option text is required in %q", entry)
		}
		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return fmt.Errorf("malformed option score in %q", entry)
		}
		preferred := len(parts) > 2 && strings.TrimSpace(parts[2]) == "preferred"

		input, err := s.inputRepo.GetOrCreate(ctx, text, "")
		if err != nil {
			return err
		}
		link := &model.QuestionOption{
			QuestionID: questionID,
			InputID:    input.ID,
			ScoreValue: score,
			Preferred:  preferred,
		}
		if err := s.optionRepo.Upsert(ctx, link); err != nil {
			return err
		}
	}
	return nil
}

func parseIntField(raw, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func parseBoolField(raw, name string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", name)
	}
	return v, nil
}
