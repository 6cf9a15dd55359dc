package domain_test

import (
	"errors"
	"testing"

	"quizapp/internal/domain"
)

func validRecord() domain.QuestionRecord {
	return domain.QuestionRecord{
		Question:      "Capital of France?",
		Option1:       "Berlin",
		Option2:       "Paris",
		Option3:       "Rome",
		Option4:       "Madrid",
		CorrectOption: 2,
	}
}

func TestQuestionRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.QuestionRecord)
		wantErr bool
	}{
		{"valid", func(r *domain.QuestionRecord) {}, false},
		{"missing question", func(r *domain.QuestionRecord) { r.Question = "" }, true},
		{"missing option3", func(r *domain.QuestionRecord) { r.Option3 = "" }, true},
		{"missing correct option", func(r *domain.QuestionRecord) { r.CorrectOption = 0 }, true},
		{"correct option too large", func(r *domain.QuestionRecord) { r.CorrectOption = 5 }, true},
		{"correct option negative", func(r *domain.QuestionRecord) { r.CorrectOption = -1 }, true},
		{"last option correct", func(r *domain.QuestionRecord) { r.CorrectOption = 4 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(&r)
			err := r.Validate()
			if tc.wantErr {
				if !errors.Is(err, domain.ErrMalformedRecord) {
					t.Errorf("Validate() = %v; want ErrMalformedRecord", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
		})
	}
}

func TestQuestionRecordToQuestion(t *testing.T) {
	q := validRecord().ToQuestion()
	if q.Text != "Capital of France?" {
		t.Errorf("Text = %q", q.Text)
	}
	want := [domain.OptionCount]string{"Berlin", "Paris", "Rome", "Madrid"}
	if q.Options != want {
		t.Errorf("Options = %v; want %v", q.Options, want)
	}
	if !q.IsCorrect(2) || q.IsCorrect(1) {
		t.Errorf("IsCorrect mismatch for CorrectOption=%d", q.CorrectOption)
	}
}

func TestScoreString(t *testing.T) {
	if got := (domain.Score{Correct: 7, Total: 10}).String(); got != "7 out of 10" {
		t.Errorf("String() = %q", got)
	}
}
