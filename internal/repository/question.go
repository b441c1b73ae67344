package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
	"github.com/aliskhannn/imtihan/internal/grading"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrEmptyBank        = errors.New("question bank is empty")
	ErrDuplicateID      = errors.New("duplicate question id")
	ErrUnsupportedBank  = errors.New("unsupported question bank format")
)

// latinLabels maps legacy Latin answer labels to the Arabic ones.
var latinLabels = map[string]string{
	"A": entities.LabelAlef,
	"B": entities.LabelBa,
	"C": entities.LabelJim,
}

// QuestionRepository provides read-only access to the static question bank.
// The bank is loaded once at start and never written back.
type QuestionRepository struct {
	questions []*entities.Question
	byID      map[int]*entities.Question
	problems  []Problem
}

// Problem is a data-validation finding reported while loading the bank.
type Problem struct {
	QuestionID int
	Lecture    int
	Message    string
}

// NewQuestionRepository loads the question bank from a JSON or YAML file.
func NewQuestionRepository(path string, log *zap.Logger) (*QuestionRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	questions, err := decodeBank(path, data)
	if err != nil {
		return nil, err
	}

	return NewQuestionRepositoryFrom(questions, log)
}

// NewQuestionRepositoryFrom builds a repository from already decoded questions.
func NewQuestionRepositoryFrom(questions []*entities.Question, log *zap.Logger) (*QuestionRepository, error) {
	if log == nil {
		log = zap.NewNop()
	}

	questions = dropDuplicates(questions, log)
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}

	byID := make(map[int]*entities.Question, len(questions))
	var problems []Problem
	for _, q := range questions {
		if _, ok := byID[q.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, q.ID)
		}

		migrateLabels(q)
		q.Key = entities.ParseAnswerKey(q.Answer)
		for _, problem := range checkQuestion(q) {
			log.Warn("question bank data problem",
				zap.Int("question_id", q.ID),
				zap.Int("lecture", q.LectureNumber),
				zap.String("problem", problem),
			)
			problems = append(problems, Problem{QuestionID: q.ID, Lecture: q.LectureNumber, Message: problem})
		}

		byID[q.ID] = q
	}

	log.Info("question bank loaded", zap.Int("questions", len(questions)))

	return &QuestionRepository{
		questions: questions,
		byID:      byID,
		problems:  problems,
	}, nil
}

// GetAll returns every question in bank order.
func (r *QuestionRepository) GetAll(_ context.Context) ([]*entities.Question, error) {
	return slices.Clone(r.questions), nil
}

// Problems returns the data problems found while loading.
func (r *QuestionRepository) Problems() []Problem {
	return slices.Clone(r.problems)
}

// GetByID returns the question with the given ID.
func (r *QuestionRepository) GetByID(_ context.Context, id int) (*entities.Question, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

// GetByLectures returns the questions of the given lectures in bank order.
func (r *QuestionRepository) GetByLectures(_ context.Context, lectures []int) ([]*entities.Question, error) {
	chunk := entities.Chunk{Lectures: lectures}
	result := make([]*entities.Question, 0)
	for _, q := range r.questions {
		if chunk.Contains(q.LectureNumber) {
			result = append(result, q)
		}
	}
	return result, nil
}

type bankDocument struct {
	Questions []*entities.Question `json:"questions" yaml:"questions"`
}

func decodeBank(path string, data []byte) ([]*entities.Question, error) {
	var doc bankDocument

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBank, path)
	}

	return doc.Questions, nil
}

// dropDuplicates keeps the first question for each (trimmed text, type) pair.
func dropDuplicates(questions []*entities.Question, log *zap.Logger) []*entities.Question {
	type key struct {
		text  string
		qType entities.QuestionType
	}

	seen := make(map[key]int, len(questions))
	unique := make([]*entities.Question, 0, len(questions))
	for _, q := range questions {
		if q == nil {
			continue
		}

		k := key{text: strings.TrimSpace(q.Text), qType: q.Type}
		if firstID, ok := seen[k]; ok {
			log.Warn("duplicate question dropped",
				zap.Int("question_id", q.ID),
				zap.Int("duplicate_of", firstID),
			)
			continue
		}

		seen[k] = q.ID
		unique = append(unique, q)
	}

	return unique
}

// migrateLabels rewrites legacy A/B/C answer keys and "A. " choice prefixes.
func migrateLabels(q *entities.Question) {
	if !q.IsMCQ() {
		return
	}

	if label, ok := latinLabels[strings.TrimSpace(q.Answer)]; ok {
		q.Answer = label
	}

	for i, choice := range q.Choices {
		for latin, label := range latinLabels {
			if rest, ok := strings.CutPrefix(choice, latin+". "); ok {
				q.Choices[i] = label + ". " + rest
				break
			}
		}
	}
}

// checkQuestion returns data-validation problems of a loaded question.
func checkQuestion(q *entities.Question) []string {
	var problems []string

	switch q.Type {
	case entities.QuestionTypeMCQ:
		if len(q.Choices) == 0 {
			problems = append(problems, "multiple-choice question without choices")
			break
		}
		if q.Key.IsLabeled() {
			if q.Key.Index >= len(q.Choices) {
				problems = append(problems, fmt.Sprintf("label %q points past %d choices", q.Key.Text, len(q.Choices)))
			}
			if len(q.Choices) > entities.LabelCount {
				problems = append(problems, fmt.Sprintf("labeled answer %q on a question with %d choices; labels only address the first three choices", q.Key.Text, len(q.Choices)))
			}
			break
		}
		if !matchesChoice(q.Key.Text, q.Choices) {
			problem := fmt.Sprintf("literal answer %q matches no choice", q.Key.Text)
			if utf8.RuneCountInString(q.Key.Text) == 1 {
				problem += "; labels only address the first three choices"
			}
			problems = append(problems, problem)
		}

	case entities.QuestionTypeTrueFalse:
		if len(q.Choices) > 0 {
			problems = append(problems, "true/false question with choices")
		}
		if q.Key.Text != entities.AnswerTrue && q.Key.Text != entities.AnswerFalse {
			problems = append(problems, fmt.Sprintf("true/false answer %q is neither %q nor %q", q.Key.Text, entities.AnswerTrue, entities.AnswerFalse))
		}

	default:
		problems = append(problems, fmt.Sprintf("unknown question type %q", q.Type))
	}

	if strings.TrimSpace(q.Text) == "" {
		problems = append(problems, "empty question text")
	}

	return problems
}

func matchesChoice(answer string, choices []string) bool {
	for _, c := range choices {
		if grading.Normalize(c) == grading.Normalize(answer) {
			return true
		}
	}
	return false
}
