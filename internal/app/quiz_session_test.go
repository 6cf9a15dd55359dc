package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizapp/internal/adapter/memory"
	"quizapp/internal/app"
	"quizapp/internal/domain"
)

type mockSampler struct {
	sampleFn func(ctx context.Context, n int) ([]domain.Question, error)
}

func (m *mockSampler) SampleQuestions(ctx context.Context, n int) ([]domain.Question, error) {
	if m.sampleFn != nil {
		return m.sampleFn(ctx, n)
	}
	return nil, nil
}

func loadedStore(t *testing.T, n int) *memory.DB {
	t.Helper()
	db := memory.New()
	var records []domain.QuestionRecord
	for i := 0; i < n; i++ {
		records = append(records, domain.QuestionRecord{
			Question:      fmt.Sprintf("Q%d", i),
			Option1:       "a",
			Option2:       "b",
			Option3:       "c",
			Option4:       "d",
			CorrectOption: i%4 + 1,
		})
	}
	_, err := db.LoadQuestions(context.Background(), records)
	require.NoError(t, err)
	return db
}

func TestSessionAllCorrect(t *testing.T) {
	s := app.NewSession(loadedStore(t, 25))
	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, app.InProgress, s.State())

	for s.State() == app.InProgress {
		q, err := s.CurrentQuestion()
		require.NoError(t, err)
		correct, err := s.SubmitAnswer(q.CorrectOption)
		require.NoError(t, err)
		assert.True(t, correct)
	}

	score, err := s.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, domain.Score{Correct: 10, Total: 10}, score)
	assert.Equal(t, "10 out of 10", score.String())
}

func TestSessionAllWrong(t *testing.T) {
	s := app.NewSession(loadedStore(t, 12))
	require.NoError(t, s.Start(context.Background()))

	for s.State() == app.InProgress {
		q, err := s.CurrentQuestion()
		require.NoError(t, err)
		wrong := q.CorrectOption%4 + 1
		correct, err := s.SubmitAnswer(wrong)
		require.NoError(t, err)
		assert.False(t, correct)
	}

	score, err := s.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, domain.Score{Correct: 0, Total: 10}, score)
}

func TestSessionSampledQuestionsAreDistinct(t *testing.T) {
	s := app.NewSession(loadedStore(t, 30))
	require.NoError(t, s.Start(context.Background()))

	seen := make(map[int64]bool)
	for s.State() == app.InProgress {
		q, err := s.CurrentQuestion()
		require.NoError(t, err)
		require.False(t, seen[q.ID], "question %d asked twice", q.ID)
		seen[q.ID] = true
		_, err = s.SubmitAnswer(1)
		require.NoError(t, err)
	}
	assert.Len(t, seen, app.DefaultQuizSize)
}

func TestSessionThreeQuestionScenario(t *testing.T) {
	records := []domain.QuestionRecord{
		{Question: "A", Option1: "1", Option2: "2", Option3: "3", Option4: "4", CorrectOption: 2},
		{Question: "B", Option1: "1", Option2: "2", Option3: "3", Option4: "4", CorrectOption: 1},
		{Question: "C", Option1: "1", Option2: "2", Option3: "3", Option4: "4", CorrectOption: 4},
	}
	answers := map[string]int{"A": 2, "B": 1, "C": 4}

	tests := []struct {
		name   string
		answer func(text string) int
		want   domain.Score
	}{
		{"all correct", func(text string) int { return answers[text] }, domain.Score{Correct: 3, Total: 3}},
		{"miss A", func(text string) int {
			if text == "A" {
				return 1
			}
			return answers[text]
		}, domain.Score{Correct: 2, Total: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := memory.New()
			_, err := db.LoadQuestions(context.Background(), records)
			require.NoError(t, err)

			s := app.NewSession(db)
			require.NoError(t, s.Start(context.Background()))

			asked := 0
			for s.State() == app.InProgress {
				q, err := s.CurrentQuestion()
				require.NoError(t, err)
				_, err = s.SubmitAnswer(tc.answer(q.Text))
				require.NoError(t, err)
				asked++
			}
			assert.Equal(t, 3, asked)

			score, err := s.FinalScore()
			require.NoError(t, err)
			assert.Equal(t, tc.want, score)
		})
	}
}

func TestSessionInvalidTransitions(t *testing.T) {
	ctx := context.Background()
	s := app.NewSession(loadedStore(t, 2))

	_, err := s.CurrentQuestion()
	assert.ErrorIs(t, err, app.ErrInvalidState)
	_, err = s.SubmitAnswer(1)
	assert.ErrorIs(t, err, app.ErrInvalidState)
	_, err = s.FinalScore()
	assert.ErrorIs(t, err, app.ErrInvalidState)

	require.NoError(t, s.Start(ctx))
	assert.ErrorIs(t, s.Start(ctx), app.ErrInvalidState)

	_, err = s.FinalScore()
	assert.ErrorIs(t, err, app.ErrInvalidState)

	for i := 0; i < 2; i++ {
		_, err = s.SubmitAnswer(1)
		require.NoError(t, err)
	}
	assert.Equal(t, app.Completed, s.State())

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, app.ErrInvalidState)
	_, err = s.SubmitAnswer(1)
	assert.ErrorIs(t, err, app.ErrInvalidState)
	assert.ErrorIs(t, s.Start(ctx), app.ErrInvalidState)

	answered, score := s.Progress()
	assert.Equal(t, 2, answered)
	assert.Equal(t, 2, score.Total)
}

func TestSessionEmptyStore(t *testing.T) {
	s := app.NewSession(memory.New())
	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, app.Completed, s.State())

	_, err := s.CurrentQuestion()
	assert.ErrorIs(t, err, app.ErrInvalidState)

	score, err := s.FinalScore()
	require.NoError(t, err)
	assert.Equal(t, domain.Score{}, score)
}

func TestSessionSnapshotIsolation(t *testing.T) {
	pool := []domain.Question{
		{ID: 1, Text: "one", CorrectOption: 1},
		{ID: 2, Text: "two", CorrectOption: 2},
	}
	s := app.NewSession(&mockSampler{
		sampleFn: func(ctx context.Context, n int) ([]domain.Question, error) {
			assert.Equal(t, 5, n)
			return pool, nil
		},
	}, app.WithSize(5))
	require.NoError(t, s.Start(context.Background()))

	pool[0].Text = "changed"
	pool[0].CorrectOption = 4

	q, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "one", q.Text)
	correct, err := s.SubmitAnswer(1)
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestSessionSamplerError(t *testing.T) {
	boom := errors.New("database is locked")
	s := app.NewSession(&mockSampler{
		sampleFn: func(ctx context.Context, n int) ([]domain.Question, error) {
			return nil, boom
		},
	})

	err := s.Start(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, app.NotStarted, s.State())
}

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "not_started", app.NotStarted.String())
	assert.Equal(t, "in_progress", app.InProgress.String())
	assert.Equal(t, "completed", app.Completed.String())
	assert.Equal(t, "SessionState(9)", app.SessionState(9).String())
}
