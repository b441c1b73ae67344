package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
	"github.com/aliskhannn/imtihan/internal/grading"
	"github.com/aliskhannn/imtihan/internal/repository"
)

var (
	ErrChunkNotFound     = errors.New("chunk not found")
	ErrNoQuestions       = errors.New("no questions available")
	ErrNoSavedSession    = errors.New("no saved session")
	ErrAttemptCompleted  = errors.New("attempt is already completed")
	ErrAlreadyAnswered   = errors.New("question is already answered")
	ErrNotAnswered       = errors.New("current question is not answered yet")
	ErrAnswerOutOfDomain = errors.New("answer is not one of the question options")
)

// QuizService drives study sessions, quizzes and full exams.
type QuizService struct {
	questions QuestionRepo
	keeper    SessionKeeper
	chunks    []entities.Chunk
	validator *grading.AnswerValidator

	mu  sync.Mutex // guards src
	src grading.Source

	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

// Option configures a QuizService.
type Option func(*QuizService)

// WithRandSource sets the source used for question and choice order.
func WithRandSource(src grading.Source) Option {
	return func(s *QuizService) { s.src = src }
}

// WithClock sets the time source for answer timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *QuizService) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *QuizService) { s.log = log }
}

// WithIDGenerator sets the session ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *QuizService) { s.newID = newID }
}

// NewQuizService creates a QuizService. Nil chunks mean the default layout.
func NewQuizService(
	questions QuestionRepo,
	keeper SessionKeeper,
	chunks []entities.Chunk,
	opts ...Option,
) *QuizService {
	if len(chunks) == 0 {
		chunks = entities.DefaultChunks()
	}

	s := &QuizService{
		questions: questions,
		keeper:    keeper,
		chunks:    chunks,
		validator: grading.NewAnswerValidator(),
		src:       grading.SystemSource(),
		now:       time.Now,
		newID:     uuid.NewString,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Chunks returns the configured chunks.
func (s *QuizService) Chunks() []entities.Chunk {
	return slices.Clone(s.chunks)
}

// Chunk returns the chunk with the given ID.
func (s *QuizService) Chunk(id int) (entities.Chunk, error) {
	for _, c := range s.chunks {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Chunk{}, fmt.Errorf("%w: %d", ErrChunkNotFound, id)
}

// Study returns the chunk's questions in bank order with their answers revealed.
func (s *QuizService) Study(ctx context.Context, chunkID int) ([]StudyCard, error) {
	qs, err := s.chunkQuestions(ctx, chunkID)
	if err != nil {
		return nil, err
	}

	cards := make([]StudyCard, 0, len(qs))
	for _, q := range qs {
		cards = append(cards, newStudyCard(q))
	}
	return cards, nil
}

// StartQuiz starts a quiz over one chunk. Questions are shuffled and so are
// the choices of every multiple-choice question.
func (s *QuizService) StartQuiz(ctx context.Context, chunkID int) (*Attempt, error) {
	qs, err := s.chunkQuestions(ctx, chunkID)
	if err != nil {
		return nil, err
	}
	return s.start(ctx, entities.ModeQuiz, chunkID, qs)
}

// StartExam starts a full exam over the whole bank in shuffled order.
func (s *QuizService) StartExam(ctx context.Context) (*Attempt, error) {
	qs, err := s.questions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}
	return s.start(ctx, entities.ModeExam, 0, qs)
}

// Restart discards the attempt and starts a new one of the same kind.
func (s *QuizService) Restart(ctx context.Context, a *Attempt) (*Attempt, error) {
	if a.session.Mode == entities.ModeQuiz {
		return s.StartQuiz(ctx, a.session.ChunkID)
	}
	return s.StartExam(ctx)
}

// Resume rebuilds the saved attempt. Questions missing from the bank are skipped.
func (s *QuizService) Resume(ctx context.Context) (*Attempt, error) {
	session := s.keeper.Load(ctx)
	if session == nil {
		return nil, ErrNoSavedSession
	}

	attempt := &Attempt{session: session}
	kept := make([]int, 0, len(session.QuestionIDs))
	current := session.CurrentIndex

	for pos, id := range session.QuestionIDs {
		q, err := s.questions.GetByID(ctx, id)
		if errors.Is(err, repository.ErrQuestionNotFound) {
			s.log.Warn("saved question is no longer in the bank", zap.Int("question_id", id))
			if pos < session.CurrentIndex {
				current--
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get question %d: %w", id, err)
		}

		kept = append(kept, id)
		attempt.questions = append(attempt.questions, PresentedQuestion{
			Question: q,
			Options:  savedOptions(q, session.ChoiceOrder[id]),
		})
	}

	if len(kept) == 0 {
		s.keeper.Clear(ctx)
		return nil, ErrNoQuestions
	}

	session.QuestionIDs = kept
	session.Answers = slices.DeleteFunc(session.Answers, func(a entities.UserAnswer) bool {
		return !slices.Contains(kept, a.QuestionID)
	})
	for id := range session.ChoiceOrder {
		if !slices.Contains(kept, id) {
			delete(session.ChoiceOrder, id)
		}
	}
	session.CurrentIndex = max(0, min(current, len(kept)))
	if session.CurrentIndex == len(kept) {
		session.Complete()
	}
	session.Score = grading.Aggregate(session.Answers)

	return attempt, nil
}

// Submit grades the answer to the current question and records it.
func (s *QuizService) Submit(ctx context.Context, a *Attempt, answer string) (*Feedback, error) {
	current, ok := a.Current()
	if !ok {
		return nil, ErrAttemptCompleted
	}

	q := current.Question
	if _, answered := a.session.AnswerFor(q.ID); answered {
		return nil, ErrAlreadyAnswered
	}
	if !q.InDomain(answer) {
		return nil, ErrAnswerOutOfDomain
	}

	event := entities.NewUserAnswer(q.ID, answer, s.validator.Grade(q, answer), s.now())
	a.session.Answers = append(a.session.Answers, event)
	a.session.Score = grading.Aggregate(a.session.Answers)
	s.keeper.Save(ctx, a.session)

	return &Feedback{
		Answer:        event,
		CorrectAnswer: grading.CorrectText(q),
		Explanation:   q.Explanation,
		Score:         a.session.Score,
	}, nil
}

// Next moves to the following question. It reports true once the attempt is completed.
func (s *QuizService) Next(ctx context.Context, a *Attempt) (bool, error) {
	if a.Completed() {
		return true, ErrAttemptCompleted
	}
	if !a.Answered() {
		return false, ErrNotAnswered
	}

	a.session.CurrentIndex++
	if a.session.CurrentIndex >= len(a.questions) {
		a.session.CurrentIndex = len(a.questions)
		a.session.Complete()
		s.log.Info("attempt completed",
			zap.String("session_id", a.session.ID),
			zap.Int("correct", a.session.Score.Correct),
			zap.Int("total", a.session.Score.Total),
		)
	}
	s.keeper.Save(ctx, a.session)

	return a.session.Completed, nil
}

// Score recomputes the score of the attempt from its answers.
func (s *QuizService) Score(a *Attempt) entities.Score {
	return grading.Aggregate(a.session.Answers)
}

// Abandon forgets the saved attempt.
func (s *QuizService) Abandon(ctx context.Context) {
	s.keeper.Clear(ctx)
}

func (s *QuizService) chunkQuestions(ctx context.Context, chunkID int) ([]*entities.Question, error) {
	chunk, err := s.Chunk(chunkID)
	if err != nil {
		return nil, err
	}

	qs, err := s.questions.GetByLectures(ctx, chunk.Lectures)
	if err != nil {
		return nil, fmt.Errorf("get chunk questions: %w", err)
	}
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}
	return qs, nil
}

func (s *QuizService) start(
	ctx context.Context, mode entities.SessionMode, chunkID int, qs []*entities.Question,
) (*Attempt, error) {
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}

	ordered := shuffleWith(s, qs)
	ids := make([]int, len(ordered))
	for i, q := range ordered {
		ids[i] = q.ID
	}

	session := entities.NewExamSession(s.newID(), mode, chunkID, ids, s.now())
	attempt := &Attempt{
		session:   session,
		questions: make([]PresentedQuestion, 0, len(ordered)),
	}

	for _, q := range ordered {
		options := q.Options()
		// True/false options have a fixed meaning and are never reordered.
		if mode == entities.ModeQuiz && q.IsMCQ() {
			options = shuffleWith(s, q.Choices)
			session.ChoiceOrder[q.ID] = options
		}
		attempt.questions = append(attempt.questions, PresentedQuestion{Question: q, Options: options})
	}

	s.keeper.Save(ctx, session)
	s.log.Info("attempt started",
		zap.String("session_id", session.ID),
		zap.String("mode", string(mode)),
		zap.Int("chunk_id", chunkID),
		zap.Int("questions", len(ids)),
	)

	return attempt, nil
}

func shuffleWith[T any](s *QuizService, items []T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return grading.Shuffle(items, s.src)
}

// savedOptions returns the saved display order if it still matches the bank.
func savedOptions(q *entities.Question, saved []string) []string {
	if !q.IsMCQ() || len(saved) != len(q.Choices) {
		return q.Options()
	}

	a, b := slices.Clone(saved), slices.Clone(q.Choices)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		return q.Options()
	}
	return slices.Clone(saved)
}
