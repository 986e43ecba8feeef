package model

// QuestionOrderItem is one (question, order) assignment in an order update
type QuestionOrderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// QuestionOrderPayload maps category ids to the new order of their questions
type QuestionOrderPayload map[string][]QuestionOrderItem

// ImportRowError records why a single CSV row was rejected
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResult aggregates a bulk catalog import. One bad row never aborts the
// upload; its error lands here instead.
type ImportResult struct {
	BatchID  string           `json:"batchId"`
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
