// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"math/rand"
	"sync"

	"quizapp/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	questions []domain.Question
	users     []*domain.User

	questionIDCounter int64
	userIDCounter     int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.QuestionRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)

// Close is a no-op; it lets DB stand in for the SQL backends.
func (db *DB) Close() error { return nil }

// --- QuestionRepository ---

// LoadQuestions stores every valid record and reports the malformed ones.
func (db *DB) LoadQuestions(ctx context.Context, records []domain.QuestionRecord) (domain.LoadResult, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var res domain.LoadResult
	for i, r := range records {
		if err := r.Validate(); err != nil {
			res.Skipped = append(res.Skipped, domain.RecordError{Index: i, Err: err})
			continue
		}
		db.questionIDCounter++
		q := r.ToQuestion()
		q.ID = db.questionIDCounter
		db.questions = append(db.questions, q)
		res.Inserted++
	}
	return res, nil
}

// SampleQuestions returns up to n distinct questions in random order.
func (db *DB) SampleQuestions(ctx context.Context, n int) ([]domain.Question, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if n <= 0 {
		return []domain.Question{}, nil
	}
	if n > len(db.questions) {
		n = len(db.questions)
	}

	out := make([]domain.Question, 0, n)
	for _, idx := range rand.Perm(len(db.questions))[:n] {
		out = append(out, db.questions[idx])
	}
	return out, nil
}

// CountQuestions returns the number of stored questions.
func (db *DB) CountQuestions(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.questions), nil
}

// --- UserRepository ---

// CreateUser creates a new user.
func (db *DB) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, domain.ErrDuplicateUsername
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
	}
	db.users = append(db.users, u)
	ret := *u
	return &ret, nil
}

// FindUser returns the user matching both username and password hash.
func (db *DB) FindUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username && u.PasswordHash == passwordHash {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			ret := *u
			return &ret, nil
		}
	}
	// Return nil if not found
	return nil, nil
}

// CountUsers returns the total number of users.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}
