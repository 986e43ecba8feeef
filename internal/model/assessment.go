package model

import "time"

// AssessmentStatus is the lifecycle state of an assessment
type AssessmentStatus string

const (
	AssessmentStatusInProgress AssessmentStatus = "in_progress"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
)

// Assessment is one run of the questionnaire for a customer by an employee.
// At most one in_progress assessment exists per (customer, employee) pair;
// starting again resumes it. Completion is detected by the sequencer, not
// submitted by the client.
type Assessment struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	CustomerID    string           `json:"customerId" bson:"customerId"`
	EmployeeID    string           `json:"employeeId" bson:"employeeId"`
	Status        AssessmentStatus `json:"status" bson:"status"`
	DateStarted   time.Time        `json:"dateStarted" bson:"dateStarted"`
	DateCompleted *time.Time       `json:"dateCompleted,omitempty" bson:"dateCompleted,omitempty"`
}

// Answer is the single recorded answer for (assessment, question). Recording
// again overwrites it; a score is never stored here, it is derived at read
// time from the current catalog metadata.
type Answer struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	AssessmentID    string    `json:"assessmentId" bson:"assessmentId"`
	QuestionID      string    `json:"questionId" bson:"questionId"`
	AnswerText      string    `json:"answerText,omitempty" bson:"answerText,omitempty"`
	SelectedInputID string    `json:"selectedInputId,omitempty" bson:"selectedInputId,omitempty"`
	FlagRequired    bool      `json:"flagRequired" bson:"flagRequired"`
	Note            string    `json:"note,omitempty" bson:"note,omitempty"`
	DateAnswered    time.Time `json:"dateAnswered" bson:"dateAnswered"`
}

// StartAssessmentRequest is the request body for starting or resuming an assessment
type StartAssessmentRequest struct {
	CustomerID string `json:"customerId"`
}

// StartAssessmentResponse reports the assessment to drive and whether it was resumed
type StartAssessmentResponse struct {
	Assessment *Assessment `json:"assessment"`
	Resumed    bool        `json:"resumed"`
}

// RecordAnswerRequest is the request body for recording one answer. The
// recorder is tolerant: empty text with no option is a deliberate skip.
type RecordAnswerRequest struct {
	QuestionID      string `json:"questionId"`
	AnswerText      string `json:"answerText"`
	SelectedInputID string `json:"selectedInputId"`
	FlagRequired    bool   `json:"flagRequired"`
	Note            string `json:"note"`
}

// Progress reports how far along an assessment is
type Progress struct {
	CurrentNumber  int `json:"currentNumber"`
	AnsweredCount  int `json:"answeredCount"`
	TotalQuestions int `json:"totalQuestions"`
}

// NextQuestion is the sequencer's answer to "what should the employee see now".
// Done means every question in scope has an answer; with a category filter
// that is only category completion, without one the assessment is complete.
type NextQuestion struct {
	Done         bool         `json:"done"`
	CategoryDone bool         `json:"categoryDone"`
	Question     *Question    `json:"question,omitempty"`
	Options      []OptionView `json:"options,omitempty"`
	Progress     Progress     `json:"progress"`
}
