package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trivia-api/internal/trivia"
)

const (
	maxAttempts   = 3
	questionCount = 5
)

// QuizAPI is the part of the trivia service a player needs.
type QuizAPI interface {
	ListCategories(ctx context.Context) ([]trivia.Category, error)
	DrawQuestion(ctx context.Context, categoryID int, previous []int) (*trivia.Question, error)
}

// Run plays one quiz round: the player picks a category (0 for all), then
// answers up to five questions the service has not asked yet in this round.
func Run(ctx context.Context, in io.Reader, out io.Writer, api QuizAPI) error {
	categories, err := api.ListCategories(ctx)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	printCategories(out, categories)
	categoryID, ok := chooseCategory(reader, out, categories)
	if !ok {
		fmt.Fprintln(out, "No category chosen.")
		return nil
	}

	previous := make([]int, 0, questionCount)
	score := 0

	for len(previous) < questionCount {
		question, err := api.DrawQuestion(ctx, categoryID, previous)
		if err != nil {
			return err
		}
		if question == nil {
			fmt.Fprintln(out, "No more questions in this category.")
			break
		}
		previous = append(previous, question.ID)

		fmt.Fprintf(out, "\nQ%d: %s\n", len(previous), question.Question)
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			fmt.Fprintf(out, "Skipping. Correct answer was %s\n", question.Answer)
			break
		}

		if isCorrect(answer, question.Answer) {
			fmt.Fprintln(out, "Correct!")
			score++
		} else {
			fmt.Fprintf(out, "Wrong. Correct answer was %s\n", question.Answer)
		}
	}

	fmt.Fprintf(out, "\nFinal score: %d/%d\n", score, len(previous))
	return nil
}

func printCategories(out io.Writer, categories []trivia.Category) {
	fmt.Fprintln(out, "Categories:")
	fmt.Fprintln(out, "  0. All")
	for _, category := range categories {
		fmt.Fprintf(out, "  %d. %s\n", category.ID, category.Type)
	}
}

func chooseCategory(reader *bufio.Reader, out io.Writer, categories []trivia.Category) (int, bool) {
	valid := map[int]struct{}{0: {}}
	for _, category := range categories {
		valid[category.ID] = struct{}{}
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprint(out, "Choose a category: ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, false
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			if _, ok := valid[choice]; ok {
				return choice, true
			}
		}

		if attempt < maxAttempts {
			fmt.Fprintln(out, "Invalid category. Please enter one of the listed numbers.")
		}
	}

	return 0, false
}

func isCorrect(given, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}
