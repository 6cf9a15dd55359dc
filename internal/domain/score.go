package domain

import "fmt"

// Score is the result of a quiz session.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

func (s Score) String() string {
	return fmt.Sprintf("%d out of %d", s.Correct, s.Total)
}
