package model

import "time"

// QuestionType defines how a question is presented and answered
type QuestionType string

const (
	QuestionTypeYesNoOther     QuestionType = "yes_no_other"    // Yes/No/Other picked from linked options
	QuestionTypeMultipleChoice QuestionType = "multiple_choice" // One of the linked options
	QuestionTypeFreeInput      QuestionType = "free_input"      // Typed answer, includes count questions
)

// IsValid reports whether qt is one of the declared question types
func (qt QuestionType) IsValid() bool {
	switch qt {
	case QuestionTypeYesNoOther, QuestionTypeMultipleChoice, QuestionTypeFreeInput:
		return true
	}
	return false
}

// CountType labels what a count question is tallying
type CountType string

const (
	CountTypePC       CountType = "pc"
	CountTypeServer   CountType = "server"
	CountTypeEmployee CountType = "employee"
	CountTypeSites    CountType = "sites"
	CountTypeSwitches CountType = "switches"
	CountTypePhones   CountType = "phones"
	CountTypeTablets  CountType = "tablets"
	CountTypeVPN      CountType = "vpn"
)

// Category groups questions; Order is assigned by admins and drives presentation
type Category struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Order       int    `json:"order" bson:"order"`
}

// Question belongs to exactly one category. Weight is the risk score a gap
// answer contributes; neutral questions never affect scoring.
type Question struct {
	ID                   string       `json:"id" bson:"_id,omitempty"`
	CategoryID           string       `json:"categoryId" bson:"categoryId"`
	Text                 string       `json:"text" bson:"text"`
	Explanation          string       `json:"explanation,omitempty" bson:"explanation,omitempty"`
	Type                 QuestionType `json:"type" bson:"type"`
	Weight               int          `json:"weight" bson:"weight"`
	Neutral              bool         `json:"neutral" bson:"neutral"`
	IsCountQuestion      bool         `json:"isCountQuestion" bson:"isCountQuestion"`
	CountType            CountType    `json:"countType,omitempty" bson:"countType,omitempty"`
	RecommendedProductID string       `json:"recommendedProductId,omitempty" bson:"recommendedProductId,omitempty"`
	Order                int          `json:"order" bson:"order"`
}

// StandardizedInput is a global, deduplicated catalog entry for an answer text
type StandardizedInput struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Text        string `json:"text" bson:"text"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// QuestionOption links a question to a standardized input and carries the
// scoring metadata for picking that input on that question. Unique per
// (question, input) pair.
type QuestionOption struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	QuestionID string `json:"questionId" bson:"questionId"`
	InputID    string `json:"inputId" bson:"inputId"`
	ScoreValue int    `json:"scoreValue" bson:"scoreValue"`
	Preferred  bool   `json:"preferred" bson:"preferred"`
}

// Product is a recommendable item tied to gap answers in the summary
type Product struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	ItemNumber string    `json:"itemNumber" bson:"itemNumber"`
	UnitType   string    `json:"unitType,omitempty" bson:"unitType,omitempty"`
	CountType  CountType `json:"countType,omitempty" bson:"countType,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// OptionView is a question's offered option joined with its input text,
// shaped for the question screen
type OptionView struct {
	InputID     string `json:"inputId"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}
