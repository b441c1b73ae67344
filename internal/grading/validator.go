package grading

import "github.com/aliskhannn/imtihan/internal/domain/entities"

// IsCorrect reports whether userAnswer matches the answer key.
// choices must be the canonical, unshuffled list: labels refer to canonical positions.
func IsCorrect(userAnswer, answerKey string, choices []string) bool {
	return matches(userAnswer, ResolveCorrectText(answerKey, choices))
}

// AnswerValidator grades answers against questions of the bank.
type AnswerValidator struct{}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// Grade checks the user's answer against the question's canonical answer.
// Display order of the choices does not matter: the comparison is by text.
func (v *AnswerValidator) Grade(q *entities.Question, userAnswer string) bool {
	if q == nil {
		return false
	}
	return matches(userAnswer, CorrectText(q))
}

func matches(userAnswer, correct string) bool {
	return Normalize(userAnswer) == Normalize(correct)
}
