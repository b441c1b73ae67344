package service

import (
	"slices"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
	"github.com/aliskhannn/imtihan/internal/grading"
)

// PresentedQuestion is a canonical question together with the order its
// options are displayed in.
type PresentedQuestion struct {
	Question *entities.Question
	Options  []string
}

// Attempt is one running quiz or exam.
type Attempt struct {
	session   *entities.ExamSession
	questions []PresentedQuestion
}

// Session returns the underlying session record.
func (a *Attempt) Session() *entities.ExamSession {
	return a.session
}

// Questions returns the questions in presentation order.
func (a *Attempt) Questions() []PresentedQuestion {
	return slices.Clone(a.questions)
}

// Current returns the question at the current position.
func (a *Attempt) Current() (*PresentedQuestion, bool) {
	idx := a.session.CurrentIndex
	if a.session.Completed || idx < 0 || idx >= len(a.questions) {
		return nil, false
	}
	return &a.questions[idx], true
}

// Progress returns the 1-based position of the current question and the total.
func (a *Attempt) Progress() (current, total int) {
	total = len(a.questions)
	current = a.session.CurrentIndex + 1
	if current > total {
		current = total
	}
	return current, total
}

// Completed reports whether every question went through.
func (a *Attempt) Completed() bool {
	return a.session.Completed
}

// Answered reports whether the current question already has an answer.
func (a *Attempt) Answered() bool {
	q, ok := a.Current()
	if !ok {
		return false
	}
	_, ok = a.session.AnswerFor(q.Question.ID)
	return ok
}

// Feedback is the outcome of one submitted answer.
type Feedback struct {
	Answer        entities.UserAnswer
	CorrectAnswer string
	Explanation   string
	Score         entities.Score
}

// IsCorrect reports whether the submitted answer was correct.
func (f *Feedback) IsCorrect() bool {
	return f.Answer.IsCorrect
}

// StudyCard is a question shown with its answer revealed.
type StudyCard struct {
	Question      *entities.Question
	Options       []string
	CorrectAnswer string
}

func newStudyCard(q *entities.Question) StudyCard {
	return StudyCard{
		Question:      q,
		Options:       q.Options(),
		CorrectAnswer: grading.CorrectText(q),
	}
}
