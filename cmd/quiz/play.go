package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"quizapp/internal/app"
	"quizapp/internal/domain"
)

var errNoInput = errors.New("input closed before the quiz finished")

// play drives session from line-based input until it completes.
func play(ctx context.Context, in io.Reader, out io.Writer, session *app.Session) error {
	if err := session.Start(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for session.State() == app.InProgress {
		q, err := session.CurrentQuestion()
		if err != nil {
			return err
		}
		answered, _ := session.Progress()
		printQuestion(out, answered+1, q)

		option, err := readOption(scanner, out)
		if err != nil {
			return err
		}
		correct, err := session.SubmitAnswer(option)
		if err != nil {
			return err
		}
		if correct {
			fmt.Fprintln(out, color.GreenString("Correct!"))
		} else {
			fmt.Fprintln(out, color.RedString("Wrong, the answer was %d.", q.CorrectOption))
		}
	}

	score, err := session.FinalScore()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nYou scored %s\n", color.New(color.Bold).Sprint(score))
	return nil
}

func printQuestion(out io.Writer, n int, q domain.Question) {
	fmt.Fprintf(out, "\n%s %s\n", color.New(color.Bold).Sprintf("%d.", n), q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
	}
}

func readOption(scanner *bufio.Scanner, out io.Writer) (int, error) {
	for {
		fmt.Fprintf(out, "Your answer [1-%d]: ", domain.OptionCount)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, errNoInput
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= domain.OptionCount {
			return n, nil
		}
		fmt.Fprintln(out, "Please enter a number between 1 and 4.")
	}
}
