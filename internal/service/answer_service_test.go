package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberassess/internal/model"
)

type answerFixture struct {
	svc         *AnswerService
	answers     *fakeAnswerRepo
	assessments *fakeAssessmentRepo
	questions   *fakeQuestionRepo
	inputs      *fakeInputRepo

	assessmentID string
	question     *model.Question
	yes          *model.StandardizedInput
	no           *model.StandardizedInput
}

func newAnswerFixture(t *testing.T) *answerFixture {
	t.Helper()
	ctx := context.Background()

	f := &answerFixture{
		answers:     &fakeAnswerRepo{},
		assessments: &fakeAssessmentRepo{},
		questions:   &fakeQuestionRepo{},
		inputs:      &fakeInputRepo{},
	}
	f.svc = NewAnswerService(f.answers, f.assessments, f.questions, f.inputs, nil)

	assessment, _, err := f.assessments.GetOrCreateInProgress(ctx, "cust1", "emp1")
	require.NoError(t, err)
	f.assessmentID = assessment.ID

	f.question = &model.Question{CategoryID: "catA", Text: "MFA enabled?", Type: model.QuestionTypeYesNoOther, Weight: 10, Order: 1}
	_, err = f.questions.Create(ctx, f.question)
	require.NoError(t, err)

	f.yes, err = f.inputs.GetOrCreate(ctx, "Yes", "")
	require.NoError(t, err)
	f.no, err = f.inputs.GetOrCreate(ctx, "No", "")
	require.NoError(t, err)

	return f
}

func TestRecordCreatesAnswer(t *testing.T) {
	f := newAnswerFixture(t)

	saved, err := f.svc.Record(context.Background(), f.assessmentID, &model.RecordAnswerRequest{
		QuestionID:      f.question.ID,
		SelectedInputID: f.yes.ID,
		Note:            "confirmed with IT lead",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, f.assessmentID, saved.AssessmentID)
	assert.Equal(t, f.yes.ID, saved.SelectedInputID)
	assert.Equal(t, "confirmed with IT lead", saved.Note)
	assert.False(t, saved.DateAnswered.IsZero())
}

func TestRecordOverwritesExistingAnswer(t *testing.T) {
	f := newAnswerFixture(t)
	ctx := context.Background()

	first, err := f.svc.Record(ctx, f.assessmentID, &model.RecordAnswerRequest{
		QuestionID:      f.question.ID,
		SelectedInputID: f.yes.ID,
	})
	require.NoError(t, err)

	second, err := f.svc.Record(ctx, f.assessmentID, &model.RecordAnswerRequest{
		QuestionID:      f.question.ID,
		SelectedInputID: f.no.ID,
		Note:            "revised after walkthrough",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, f.no.ID, second.SelectedInputID)

	count, err := f.answers.CountByAssessment(ctx, f.assessmentID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	rows, err := f.answers.GetByAssessment(ctx, f.assessmentID)
	require.NoError(t, err)
	assert.Equal(t, "revised after walkthrough", rows[0].Note)
}

func TestRecordUnresolvableInputStoredAsNoSelection(t *testing.T) {
	f := newAnswerFixture(t)

	saved, err := f.svc.Record(context.Background(), f.assessmentID, &model.RecordAnswerRequest{
		QuestionID:      f.question.ID,
		SelectedInputID: "stale-id",
		AnswerText:      "legacy system",
	})
	require.NoError(t, err)
	assert.Empty(t, saved.SelectedInputID)
	assert.Equal(t, "legacy system", saved.AnswerText)
}

func TestRecordAllowsDeliberateSkip(t *testing.T) {
	f := newAnswerFixture(t)

	saved, err := f.svc.Record(context.Background(), f.assessmentID, &model.RecordAnswerRequest{
		QuestionID: f.question.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, saved.AnswerText)
	assert.Empty(t, saved.SelectedInputID)
}

func TestRecordUnknownAssessment(t *testing.T) {
	f := newAnswerFixture(t)

	_, err := f.svc.Record(context.Background(), "no-such-assessment", &model.RecordAnswerRequest{
		QuestionID: f.question.ID,
	})
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestRecordUnknownQuestion(t *testing.T) {
	f := newAnswerFixture(t)

	_, err := f.svc.Record(context.Background(), f.assessmentID, &model.RecordAnswerRequest{
		QuestionID: "no-such-question",
	})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
