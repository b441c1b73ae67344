package grading

import "github.com/aliskhannn/imtihan/internal/domain/entities"

// ResolveCorrectText maps a raw answer key to the correct answer text.
// Labels ا, ب and ج select choices 0, 1 and 2. Any other key, a label without
// choices, or a label past the end of choices yields the trimmed key itself.
func ResolveCorrectText(answerKey string, choices []string) string {
	return entities.ParseAnswerKey(answerKey).Resolve(choices)
}

// CorrectText returns the correct answer text of a question using its canonical choices.
func CorrectText(q *entities.Question) string {
	return questionKey(q).Resolve(q.Choices)
}

// questionKey returns the key parsed at load time, parsing it on the spot
// for questions built by hand.
func questionKey(q *entities.Question) entities.AnswerKey {
	if q.Key.Text == "" && q.Answer != "" {
		return entities.ParseAnswerKey(q.Answer)
	}
	return q.Key
}
