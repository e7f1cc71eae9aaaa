package trivia

import (
	"context"
	"errors"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyPage        = errors.New("no questions on requested page")
	// ErrStorage wraps every failure reported by the backing store.
	ErrStorage = errors.New("storage failure")
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (Category, error)
}

type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	CreateQuestion(ctx context.Context, question *Question) error
	DeleteQuestion(ctx context.Context, id int) error
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
	// QuestionIDs lists the ids of one category, or of every question when
	// categoryID is 0.
	QuestionIDs(ctx context.Context, categoryID int) ([]int, error)
}
