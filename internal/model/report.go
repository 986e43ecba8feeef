package model

// RadarScale is the fixed upper bound of the radar chart axis
const RadarScale = 20

// NoAnswerText is rendered when an answer has neither text nor an option
const NoAnswerText = "No answer provided"

// CategoryScore is one category's raw gap score. Reports keep these as an
// ordered slice so radar labels follow first-encounter order of the answers.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// RadarPoint is one normalized axis of the radar chart
type RadarPoint struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
}

// AnswerLine is one row of the human-readable transcript
type AnswerLine struct {
	QuestionID    string `json:"questionId"`
	Question      string `json:"question"`
	Category      string `json:"category"`
	DisplayAnswer string `json:"displayAnswer"`
	Note          string `json:"note,omitempty"`
	Contribution  int    `json:"contribution"`
}

// Recommendation surfaces a product linked to a question that scored a gap
type Recommendation struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	ItemNumber string `json:"itemNumber"`
	UnitType   string `json:"unitType,omitempty"`
}

// ScoreReport is the full scoring output for one assessment. It is a pure
// function of the stored answers and catalog metadata at call time, so two
// calls with no intervening writes return identical reports.
type ScoreReport struct {
	AssessmentID    string           `json:"assessmentId"`
	PerCategory     []CategoryScore  `json:"perCategory"`
	Total           int              `json:"total"`
	MaxTotal        int              `json:"maxTotal"`
	Answers         []AnswerLine     `json:"answers"`
	Radar           []RadarPoint     `json:"radar"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}
