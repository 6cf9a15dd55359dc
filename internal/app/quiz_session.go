package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"quizapp/internal/domain"
)

// DefaultQuizSize is the number of questions sampled for a quiz.
const DefaultQuizSize = 10

// ErrInvalidState is returned when an operation is not allowed in the
// session's current state.
var ErrInvalidState = errors.New("invalid operation for session state")

// SessionState is the lifecycle stage of a quiz session.
type SessionState int

const (
	NotStarted SessionState = iota
	InProgress
	Completed
)

func (s SessionState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// QuestionSampler supplies the questions for a new session.
type QuestionSampler interface {
	SampleQuestions(ctx context.Context, n int) ([]domain.Question, error)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSize sets how many questions are sampled on Start.
func WithSize(n int) SessionOption {
	return func(s *Session) { s.size = n }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// Session is one run of a quiz. The questions are a snapshot taken at Start
// and do not change afterwards.
//
// A Session is not safe for concurrent use.
type Session struct {
	id      string
	sampler QuestionSampler
	size    int
	log     *slog.Logger

	state     SessionState
	questions []domain.Question
	index     int
	score     int
}

// NewSession creates a session in the NotStarted state.
func NewSession(sampler QuestionSampler, opts ...SessionOption) *Session {
	s := &Session{
		id:      uuid.NewString(),
		sampler: sampler,
		size:    DefaultQuizSize,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id)
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() SessionState { return s.state }

// Start samples the questions and moves the session to InProgress. When no
// questions are available the session completes immediately with 0 out of 0.
func (s *Session) Start(ctx context.Context) error {
	if s.state != NotStarted {
		return fmt.Errorf("start: %w (state %s)", ErrInvalidState, s.state)
	}

	sampled, err := s.sampler.SampleQuestions(ctx, s.size)
	if err != nil {
		return fmt.Errorf("sample questions: %w", err)
	}

	s.questions = append([]domain.Question(nil), sampled...)
	s.index = 0
	s.score = 0
	s.state = InProgress
	if len(s.questions) == 0 {
		s.state = Completed
		s.log.Warn("quiz started without questions")
		return nil
	}

	s.log.Debug("quiz started", "questions", len(s.questions))
	return nil
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (domain.Question, error) {
	if s.state != InProgress || s.index >= len(s.questions) {
		return domain.Question{}, fmt.Errorf("current question: %w (state %s)", ErrInvalidState, s.state)
	}
	return s.questions[s.index], nil
}

// SubmitAnswer scores option against the current question and advances to
// the next one. It reports whether the answer was correct.
func (s *Session) SubmitAnswer(option int) (bool, error) {
	if s.state != InProgress || s.index >= len(s.questions) {
		return false, fmt.Errorf("submit answer: %w (state %s)", ErrInvalidState, s.state)
	}
	q := s.questions[s.index]

	correct := q.IsCorrect(option)
	if correct {
		s.score++
	}
	s.index++

	if s.index == len(s.questions) {
		s.state = Completed
		s.log.Info("quiz completed", "score", s.score, "total", len(s.questions))
	}
	return correct, nil
}

// FinalScore returns the result of a completed session.
func (s *Session) FinalScore() (domain.Score, error) {
	if s.state != Completed {
		return domain.Score{}, fmt.Errorf("final score: %w (state %s)", ErrInvalidState, s.state)
	}
	return domain.Score{Correct: s.score, Total: len(s.questions)}, nil
}

// Progress returns the number of answered questions and the running score.
// It may be called in any state.
func (s *Session) Progress() (answered int, score domain.Score) {
	return s.index, domain.Score{Correct: s.score, Total: len(s.questions)}
}
