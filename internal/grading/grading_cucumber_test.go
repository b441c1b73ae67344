//go:build cucumber

package grading_test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
	"github.com/aliskhannn/imtihan/internal/grading"
)

// TestGradingFeatures runs the grading feature scenarios via godog.
func TestGradingFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "grading",
		ScenarioInitializer: InitializeGradingScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("features", "grading.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeGradingScenario wires step definitions for the grading scenarios.
func InitializeGradingScenario(ctx *godog.ScenarioContext) {
	state := &gradingState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a multiple-choice question with choices "([^"]*)" and answer key "([^"]*)"$`, state.givenMCQ)
	ctx.Step(`^a true/false question with answer key "([^"]*)"$`, state.givenTrueFalse)
	ctx.Step(`^a literal answer key "([^"]*)"$`, state.givenLiteral)
	ctx.Step(`^the user answers "([^"]*)"$`, state.userAnswers)
	ctx.Step(`^the answer is correct$`, state.answerIs(true))
	ctx.Step(`^the answer is incorrect$`, state.answerIs(false))
	ctx.Step(`^the correct text is "([^"]*)"$`, state.correctTextIs)
	ctx.Step(`^the choices are shuffled for display (\d+) times$`, state.shuffleChoices)
	ctx.Step(`^only "([^"]*)" is ever judged correct$`, state.onlyJudgedCorrect)
	ctx.Step(`^the answers "([^"]*)"$`, state.givenAnswers)
	ctx.Step(`^no answers$`, state.givenNoAnswers)
	ctx.Step(`^the attempt is scored$`, state.scoreAttempt)
	ctx.Step(`^the score is (\d+) correct, (\d+) incorrect, (\d+) total and (\d+) percent$`, state.scoreIs)
}

// gradingState holds scenario state for the grading feature tests.
type gradingState struct {
	question *entities.Question
	correct  bool
	judged   map[string]bool
	events   []entities.UserAnswer
	score    entities.Score
}

func (s *gradingState) reset() {
	*s = gradingState{judged: map[string]bool{}}
}

func (s *gradingState) setQuestion(qType entities.QuestionType, choices []string, key string) {
	s.question = &entities.Question{ID: 1, Type: qType, Choices: choices, Answer: key}
	s.question.Key = entities.ParseAnswerKey(key)
}

func (s *gradingState) givenMCQ(choices, key string) error {
	s.setQuestion(entities.QuestionTypeMCQ, strings.Split(choices, "|"), key)
	return nil
}

func (s *gradingState) givenTrueFalse(key string) error {
	s.setQuestion(entities.QuestionTypeTrueFalse, nil, key)
	return nil
}

func (s *gradingState) givenLiteral(key string) error {
	s.setQuestion(entities.QuestionTypeTrueFalse, nil, key)
	return nil
}

func (s *gradingState) userAnswers(answer string) error {
	s.correct = grading.IsCorrect(answer, s.question.Answer, s.question.Choices)
	if got := grading.NewAnswerValidator().Grade(s.question, answer); got != s.correct {
		return fmt.Errorf("validator and IsCorrect disagree for %q", answer)
	}
	return nil
}

func (s *gradingState) answerIs(want bool) func() error {
	return func() error {
		if s.correct != want {
			return fmt.Errorf("expected correct=%v, got %v", want, s.correct)
		}
		return nil
	}
}

func (s *gradingState) correctTextIs(want string) error {
	if got := grading.CorrectText(s.question); got != want {
		return fmt.Errorf("expected correct text %q, got %q", want, got)
	}
	return nil
}

func (s *gradingState) shuffleChoices(times int) error {
	v := grading.NewAnswerValidator()
	for i := 0; i < times; i++ {
		for _, choice := range grading.Shuffle(s.question.Choices, nil) {
			if v.Grade(s.question, choice) {
				s.judged[choice] = true
			}
		}
	}
	return nil
}

func (s *gradingState) onlyJudgedCorrect(want string) error {
	if len(s.judged) != 1 || !s.judged[want] {
		return fmt.Errorf("expected only %q judged correct, got %v", want, s.judged)
	}
	return nil
}

func (s *gradingState) givenAnswers(list string) error {
	at := time.Unix(0, 0)
	for i, item := range strings.Split(list, ",") {
		switch strings.TrimSpace(item) {
		case "correct":
			s.events = append(s.events, entities.NewUserAnswer(i+1, item, true, at))
		case "incorrect":
			s.events = append(s.events, entities.NewUserAnswer(i+1, item, false, at))
		default:
			return fmt.Errorf("unknown answer outcome %q", item)
		}
	}
	return nil
}

func (s *gradingState) givenNoAnswers() error {
	s.events = nil
	return nil
}

func (s *gradingState) scoreAttempt() error {
	s.score = grading.Aggregate(s.events)
	return nil
}

func (s *gradingState) scoreIs(correct, incorrect, total, percentage int) error {
	want := entities.Score{Correct: correct, Incorrect: incorrect, Total: total, Percentage: percentage}
	if s.score != want {
		return fmt.Errorf("expected score %+v, got %+v", want, s.score)
	}
	return nil
}
