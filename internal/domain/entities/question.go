// Package entities contains domain entities used across the application.
package entities

import "slices"

// QuestionType is the closed set of question kinds in the bank.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "mcq"        // multiple choice with a choices list
	QuestionTypeTrueFalse QuestionType = "true_false" // fixed true/false pair
)

// Fixed answer texts of a true/false question.
const (
	AnswerTrue  = "صح"
	AnswerFalse = "خطأ"
)

// TrueFalseOptions returns the fixed options of a true/false question in display order.
func TrueFalseOptions() []string {
	return []string{AnswerTrue, AnswerFalse}
}

// Question represents a single question of the static question bank.
type Question struct {
	ID            int          `json:"id" yaml:"id"`                               // unique question ID
	LectureNumber int          `json:"lecture_number" yaml:"lecture_number"`       // lecture the question belongs to
	Type          QuestionType `json:"type" yaml:"type"`                           // "mcq" or "true_false"
	Text          string       `json:"question" yaml:"question"`                   // prompt text
	Choices       []string     `json:"choices,omitempty" yaml:"choices,omitempty"` // canonical choice order, mcq only
	Answer        string       `json:"answer" yaml:"answer"`                       // answer key as stored in the bank
	Explanation   string       `json:"explanation" yaml:"explanation"`             // explanation shown after answering
	Key           AnswerKey    `json:"-" yaml:"-"`                                 // parsed answer key, set at load time
}

// IsMCQ reports whether the question is multiple choice.
func (q *Question) IsMCQ() bool {
	return q.Type == QuestionTypeMCQ
}

// IsTrueFalse reports whether the question is a true/false question.
func (q *Question) IsTrueFalse() bool {
	return q.Type == QuestionTypeTrueFalse
}

// Options returns the valid answer domain in canonical order.
// For true/false questions this is always the fixed pair.
func (q *Question) Options() []string {
	if q.IsTrueFalse() {
		return TrueFalseOptions()
	}
	return slices.Clone(q.Choices)
}

// InDomain reports whether answer is one of the question's valid answers.
func (q *Question) InDomain(answer string) bool {
	return slices.Contains(q.Options(), answer)
}
