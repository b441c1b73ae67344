package entities

import "time"

// SessionMode is the kind of attempt a session belongs to.
type SessionMode string

const (
	ModeQuiz SessionMode = "quiz" // one chunk, questions and mcq choices shuffled
	ModeExam SessionMode = "exam" // whole bank, questions shuffled
)

// UserAnswer is a single recorded answer event of an attempt.
type UserAnswer struct {
	QuestionID int       `json:"questionId"` // answered question
	UserAnswer string    `json:"userAnswer"` // exact text the user selected
	IsCorrect  bool      `json:"isCorrect"`  // grading result
	Timestamp  time.Time `json:"timestamp"`  // when the answer was submitted
}

// NewUserAnswer creates an answer event for the given question.
func NewUserAnswer(questionID int, answer string, isCorrect bool, at time.Time) UserAnswer {
	return UserAnswer{
		QuestionID: questionID,
		UserAnswer: answer,
		IsCorrect:  isCorrect,
		Timestamp:  at,
	}
}

// Score summarizes the answers of an attempt.
type Score struct {
	Correct    int `json:"correct"`
	Incorrect  int `json:"incorrect"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ExamSession is the saved state of one quiz or exam attempt.
type ExamSession struct {
	ID           string           `json:"id"`                    // unique session ID
	Mode         SessionMode      `json:"mode"`                  // "quiz" or "exam"
	ChunkID      int              `json:"chunkId,omitempty"`     // chunk of a quiz, 0 for the full exam
	QuestionIDs  []int            `json:"questionIds"`           // presentation order
	ChoiceOrder  map[int][]string `json:"choiceOrder,omitempty"` // displayed choice order per mcq question
	Answers      []UserAnswer     `json:"answers"`               // answer events in submission order
	CurrentIndex int              `json:"currentIndex"`          // position in QuestionIDs
	Score        Score            `json:"score"`                 // snapshot for display
	Completed    bool             `json:"completed"`             // all questions went through
	Timestamp    time.Time        `json:"timestamp"`             // attempt start
	LastUpdated  time.Time        `json:"lastUpdated"`           // last save
}

// NewExamSession creates a session for the given presentation order.
func NewExamSession(id string, mode SessionMode, chunkID int, questionIDs []int, startedAt time.Time) *ExamSession {
	return &ExamSession{
		ID:          id,
		Mode:        mode,
		ChunkID:     chunkID,
		QuestionIDs: questionIDs,
		ChoiceOrder: make(map[int][]string),
		Answers:     []UserAnswer{},
		Timestamp:   startedAt,
		LastUpdated: startedAt,
	}
}

// IsExpired reports whether the session started more than ttl before now.
func (s *ExamSession) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.Timestamp) > ttl
}

// AnswerFor returns the recorded answer for a question, if any.
func (s *ExamSession) AnswerFor(questionID int) (UserAnswer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return UserAnswer{}, false
}

// Complete marks the session as completed.
func (s *ExamSession) Complete() {
	s.Completed = true
}
