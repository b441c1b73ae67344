package grading_test

import (
	"testing"
	"time"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
	"github.com/aliskhannn/imtihan/internal/grading"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  Paris ", "paris"},
		{"\tباريس\n", "باريس"},
		{"MiXeD لندن", "mixed لندن"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := grading.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", " A ", "صح", "  خطأ  ", "Hello World\t", "ÀÉÎ"}

	for _, s := range inputs {
		once := grading.Normalize(s)
		if twice := grading.Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestResolveCorrectText_Labels(t *testing.T) {
	choices := []string{"لندن", "باريس", "روما"}
	labels := map[string]int{"ا": 0, "ب": 1, "ج": 2}

	for label, idx := range labels {
		if got := grading.ResolveCorrectText(label, choices); got != choices[idx] {
			t.Errorf("ResolveCorrectText(%q) = %q, want %q", label, got, choices[idx])
		}
		if got := grading.ResolveCorrectText(" "+label+" ", choices); got != choices[idx] {
			t.Errorf("ResolveCorrectText with padded %q = %q, want %q", label, got, choices[idx])
		}
	}
}

func TestResolveCorrectText_Literal(t *testing.T) {
	choices := []string{"لندن", "باريس", "روما"}

	tests := []struct {
		name    string
		key     string
		choices []string
		want    string
	}{
		{"literal with choices", " باريس ", choices, "باريس"},
		{"literal without choices", "صح", nil, "صح"},
		{"label without choices", "ب", nil, "ب"},
		{"label out of range", "ج", []string{"one", "two"}, "ج"},
		{"label with empty choices", "ا", []string{}, "ا"},
		{"latin letter is not a label", "B", choices, "B"},
		{"empty key", "  ", choices, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grading.ResolveCorrectText(tt.key, tt.choices); got != tt.want {
				t.Errorf("ResolveCorrectText(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestIsCorrect(t *testing.T) {
	mcq := []string{"لندن", "باريس", "روما"}

	tests := []struct {
		name    string
		answer  string
		key     string
		choices []string
		want    bool
	}{
		{"case and whitespace insensitive", " Paris ", "paris", nil, true},
		{"mcq labeled correct", "باريس", "ب", mcq, true},
		{"mcq labeled wrong", "روما", "ب", mcq, false},
		{"true false correct", "صح", "صح", nil, true},
		{"true false wrong", "خطأ", "صح", nil, false},
		{"empty answer", "", "صح", nil, false},
		{"label compared literally when out of range", "ج", "ج", []string{"a"}, true},
		{"malformed key never matches choice", "لندن", "د", mcq, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grading.IsCorrect(tt.answer, tt.key, tt.choices); got != tt.want {
				t.Errorf("IsCorrect(%q, %q) = %v, want %v", tt.answer, tt.key, got, tt.want)
			}
		})
	}
}

func TestAnswerValidator_Grade(t *testing.T) {
	v := grading.NewAnswerValidator()
	q := &entities.Question{
		ID:      1,
		Type:    entities.QuestionTypeMCQ,
		Choices: []string{"لندن", "باريس", "روما"},
		Answer:  "ب",
	}
	q.Key = entities.ParseAnswerKey(q.Answer)

	if !v.Grade(q, "باريس") {
		t.Error("expected باريس to be graded correct")
	}
	if v.Grade(q, "روما") {
		t.Error("expected روما to be graded incorrect")
	}
	if v.Grade(nil, "باريس") {
		t.Error("expected nil question to grade false")
	}
}

func TestAnswerValidator_GradeParsesMissingKey(t *testing.T) {
	v := grading.NewAnswerValidator()
	q := &entities.Question{
		ID:      2,
		Type:    entities.QuestionTypeMCQ,
		Choices: []string{"one", "two", "three"},
		Answer:  "ج",
	}

	if !v.Grade(q, "three") {
		t.Error("expected key to be parsed from raw answer")
	}
}

func TestShuffledChoicesKeepCorrectness(t *testing.T) {
	v := grading.NewAnswerValidator()
	q := &entities.Question{
		ID:      3,
		Type:    entities.QuestionTypeMCQ,
		Choices: []string{"لندن", "باريس", "روما"},
		Answer:  "ب",
	}
	q.Key = entities.ParseAnswerKey(q.Answer)

	src := grading.NewSeededSource(7, 11)
	for i := 0; i < 20; i++ {
		display := grading.Shuffle(q.Choices, src)
		correct := 0
		for _, choice := range display {
			if v.Grade(q, choice) {
				correct++
				if choice != "باريس" {
					t.Fatalf("wrong choice %q judged correct for order %v", choice, display)
				}
			}
		}
		if correct != 1 {
			t.Fatalf("expected exactly one correct choice, got %d for order %v", correct, display)
		}
	}
}

func TestAggregate(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ev := func(ok bool) entities.UserAnswer {
		return entities.NewUserAnswer(1, "x", ok, at)
	}

	tests := []struct {
		name   string
		events []entities.UserAnswer
		want   entities.Score
	}{
		{"empty", nil, entities.Score{}},
		{"two of three", []entities.UserAnswer{ev(true), ev(true), ev(false)}, entities.Score{Correct: 2, Incorrect: 1, Total: 3, Percentage: 67}},
		{"one of three", []entities.UserAnswer{ev(true), ev(false), ev(false)}, entities.Score{Correct: 1, Incorrect: 2, Total: 3, Percentage: 33}},
		{"half up", []entities.UserAnswer{ev(true), ev(false), ev(false), ev(false), ev(false), ev(false), ev(false), ev(false)}, entities.Score{Correct: 1, Incorrect: 7, Total: 8, Percentage: 13}},
		{"all correct", []entities.UserAnswer{ev(true), ev(true)}, entities.Score{Correct: 2, Total: 2, Percentage: 100}},
		{"all wrong", []entities.UserAnswer{ev(false)}, entities.Score{Incorrect: 1, Total: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grading.Aggregate(tt.events)
			if got != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
			if got.Correct+got.Incorrect != got.Total {
				t.Errorf("correct + incorrect != total: %+v", got)
			}
			if again := grading.Aggregate(tt.events); again != got {
				t.Errorf("Aggregate not stable: %+v then %+v", got, again)
			}
		})
	}
}
