package sqlite

import (
	"context"
	"fmt"

	"quizapp/internal/domain"
)

var _ domain.QuestionRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)

// LoadQuestions inserts each valid record in its own statement.
func (d *DB) LoadQuestions(ctx context.Context, records []domain.QuestionRecord) (domain.LoadResult, error) {
	var res domain.LoadResult
	for i, r := range records {
		if err := r.Validate(); err != nil {
			res.Skipped = append(res.Skipped, domain.RecordError{Index: i, Err: err})
			continue
		}
		_, err := d.sql.ExecContext(ctx,
			"INSERT INTO questions(question, option1, option2, option3, option4, correct_option) VALUES(?, ?, ?, ?, ?, ?);",
			r.Question, r.Option1, r.Option2, r.Option3, r.Option4, r.CorrectOption,
		)
		if err != nil {
			return res, fmt.Errorf("insert record %d: %w", i, err)
		}
		res.Inserted++
	}
	return res, nil
}

// SampleQuestions returns up to n random questions.
func (d *DB) SampleQuestions(ctx context.Context, n int) ([]domain.Question, error) {
	if n <= 0 {
		return []domain.Question{}, nil
	}
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, question, option1, option2, option3, option4, correct_option FROM questions ORDER BY RANDOM() LIMIT ?;", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Question, 0, n)
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Options[0], &q.Options[1], &q.Options[2], &q.Options[3], &q.CorrectOption); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// CountQuestions returns the number of stored questions.
func (d *DB) CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions;").Scan(&count)
	return count, err
}
