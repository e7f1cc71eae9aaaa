package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia-api/internal/trivia"
)

type fakeQuizAPI struct {
	categories []trivia.Category
	questions  []trivia.Question
	listErr    error
	draws      [][]int
	drawCats   []int
}

func (f *fakeQuizAPI) ListCategories(context.Context) ([]trivia.Category, error) {
	return f.categories, f.listErr
}

func (f *fakeQuizAPI) DrawQuestion(_ context.Context, categoryID int, previous []int) (*trivia.Question, error) {
	f.draws = append(f.draws, append([]int(nil), previous...))
	f.drawCats = append(f.drawCats, categoryID)

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	for _, question := range f.questions {
		if _, ok := seen[question.ID]; ok {
			continue
		}
		if categoryID != 0 && question.Category != categoryID {
			continue
		}
		q := question
		return &q, nil
	}
	return nil, nil
}

func newFakeAPI(count int) *fakeQuizAPI {
	api := &fakeQuizAPI{
		categories: []trivia.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}},
	}
	for idx := 1; idx <= count; idx++ {
		api.questions = append(api.questions, trivia.Question{
			ID:       idx,
			Question: "question",
			Answer:   "Answer",
			Category: 2,
		})
	}
	return api
}

func TestRunStopsAfterFiveQuestions(t *testing.T) {
	api := newFakeAPI(8)
	in := strings.NewReader("2\nanswer\n  ANSWER \nwrong\nAnswer\nanswer\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), in, &out, api))

	assert.Len(t, api.draws, 5)
	assert.Equal(t, []int{1, 2, 3, 4}, api.draws[4])
	assert.Equal(t, []int{2, 2, 2, 2, 2}, api.drawCats)
	assert.Contains(t, out.String(), "Wrong. Correct answer was Answer")
	assert.Contains(t, out.String(), "Final score: 4/5")
}

func TestRunEndsWhenQuizIsExhausted(t *testing.T) {
	api := newFakeAPI(2)
	in := strings.NewReader("0\nanswer\nanswer\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), in, &out, api))

	assert.Len(t, api.draws, 3)
	assert.Contains(t, out.String(), "No more questions in this category.")
	assert.Contains(t, out.String(), "Final score: 2/2")
}

func TestRunRetriesInvalidCategory(t *testing.T) {
	api := newFakeAPI(1)
	in := strings.NewReader("art\n99\n2\nanswer\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), in, &out, api))

	assert.Equal(t, 2, strings.Count(out.String(), "Invalid category."))
	assert.Contains(t, out.String(), "Final score: 1/1")
}

func TestRunGivesUpWithoutCategory(t *testing.T) {
	api := newFakeAPI(1)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), strings.NewReader(""), &out, api))

	assert.Empty(t, api.draws)
	assert.Contains(t, out.String(), "No category chosen.")
}

func TestRunPropagatesServiceErrors(t *testing.T) {
	listErr := errors.New("unavailable")
	api := &fakeQuizAPI{listErr: listErr}

	err := Run(context.Background(), strings.NewReader("0\n"), &bytes.Buffer{}, api)
	assert.ErrorIs(t, err, listErr)
}

func TestIsCorrect(t *testing.T) {
	assert.True(t, isCorrect(" lake victoria\n", "Lake Victoria"))
	assert.False(t, isCorrect("victoria", "Lake Victoria"))
}
