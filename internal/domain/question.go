package domain

import (
	"context"
	"errors"
	"fmt"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// ErrMalformedRecord marks a bulk-load record that is missing a required field.
var ErrMalformedRecord = errors.New("malformed question record")

// Question is a stored multiple-choice question. CorrectOption is 1-based.
type Question struct {
	ID            int64               `json:"id"`
	Text          string              `json:"question"`
	Options       [OptionCount]string `json:"options"`
	CorrectOption int                 `json:"correctOption"`
}

// IsCorrect reports whether option matches the correct answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectOption
}

// QuestionRecord is one entry of the bulk-load input.
type QuestionRecord struct {
	Question      string `json:"question" yaml:"question"`
	Option1       string `json:"option1" yaml:"option1"`
	Option2       string `json:"option2" yaml:"option2"`
	Option3       string `json:"option3" yaml:"option3"`
	Option4       string `json:"option4" yaml:"option4"`
	CorrectOption int    `json:"correct_option" yaml:"correct_option"`
}

// Validate checks that every required field is present and the correct
// option points at one of the four options.
func (r QuestionRecord) Validate() error {
	if r.Question == "" {
		return fmt.Errorf("%w: missing question", ErrMalformedRecord)
	}
	for i, opt := range r.options() {
		if opt == "" {
			return fmt.Errorf("%w: missing option%d", ErrMalformedRecord, i+1)
		}
	}
	if r.CorrectOption == 0 {
		return fmt.Errorf("%w: missing correct_option", ErrMalformedRecord)
	}
	if r.CorrectOption < 1 || r.CorrectOption > OptionCount {
		return fmt.Errorf("%w: correct_option %d out of range [1,%d]", ErrMalformedRecord, r.CorrectOption, OptionCount)
	}
	return nil
}

// ToQuestion converts the record into a Question without an ID.
func (r QuestionRecord) ToQuestion() Question {
	return Question{
		Text:          r.Question,
		Options:       r.options(),
		CorrectOption: r.CorrectOption,
	}
}

func (r QuestionRecord) options() [OptionCount]string {
	return [OptionCount]string{r.Option1, r.Option2, r.Option3, r.Option4}
}

// RecordError describes a skipped bulk-load record.
type RecordError struct {
	Index int
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// LoadResult summarizes a bulk load.
type LoadResult struct {
	Inserted int
	Skipped  []RecordError
}

// QuestionRepository is the port for question persistence.
type QuestionRepository interface {
	// LoadQuestions inserts every valid record. Malformed records are
	// skipped and reported; rows inserted before a store failure stay.
	LoadQuestions(ctx context.Context, records []QuestionRecord) (LoadResult, error)
	// SampleQuestions returns up to n distinct questions in random order.
	SampleQuestions(ctx context.Context, n int) ([]Question, error)
	CountQuestions(ctx context.Context) (int, error)
}
