package models

import (
	"github.com/go-playground/validator/v10"
)

// Question categories. Each category selects the corpus a question is
// retrieved against.
const (
	CategoryFinance   = "finance"
	CategoryInsurance = "insurance"
	CategoryFAQ       = "faq"
)

// Question is a single retrieval request: a natural-language query plus
// the candidate document ids it may resolve to. Retrieval never returns an
// id outside Source.
type Question struct {
	QID      int    `json:"qid" validate:"required"`
	Category string `json:"category" validate:"required,oneof=finance insurance faq"`
	Query    string `json:"query" validate:"required"`
	Source   []int  `json:"source" validate:"required,min=1"`
}

// Validate checks the question using go-playground/validator tags. An
// unknown category or an empty candidate set fails validation.
func (q *Question) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}

// QuestionSet is the on-disk question file format.
type QuestionSet struct {
	Questions []Question `json:"questions"`
}

// Answer records the retrieved document id for one question.
type Answer struct {
	QID      int `json:"qid"`
	Retrieve int `json:"retrieve"`
}

// AnswerSet is the output file format. Answers appear in question input
// order; questions with no retrievable document are omitted.
type AnswerSet struct {
	Answers []Answer `json:"answers"`
}
