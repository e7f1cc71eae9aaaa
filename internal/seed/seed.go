package seed

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"trivia-api/internal/opentdb"
	"trivia-api/internal/trivia"
)

// DefaultCategories are the categories every fresh database starts with.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// QuestionFetcher is satisfied by *opentdb.Client.
type QuestionFetcher interface {
	FetchQuestions(ctx context.Context, amount int) ([]opentdb.RawQuestion, error)
}

type Store interface {
	EnsureCategory(ctx context.Context, categoryType string) (trivia.Category, error)
	CreateQuestion(ctx context.Context, question *trivia.Question) error
}

type Seeder struct {
	store   Store
	fetcher QuestionFetcher
	logger  *zap.Logger
}

func NewSeeder(store Store, fetcher QuestionFetcher, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		store:   store,
		fetcher: fetcher,
		logger:  logger,
	}
}

// SeedDefaultCategories makes sure every default category exists. Running
// it again leaves existing rows untouched.
func (s *Seeder) SeedDefaultCategories(ctx context.Context) ([]trivia.Category, error) {
	categories := make([]trivia.Category, 0, len(DefaultCategories))
	for _, categoryType := range DefaultCategories {
		category, err := s.store.EnsureCategory(ctx, categoryType)
		if err != nil {
			return nil, fmt.Errorf("ensure category %q: %w", categoryType, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// ImportQuestions pulls amount questions from OpenTriviaDB and stores them,
// creating a category per OpenTriviaDB category name. It returns how many
// questions were inserted.
func (s *Seeder) ImportQuestions(ctx context.Context, amount int) (int, error) {
	if s.fetcher == nil {
		return 0, fmt.Errorf("import questions: no question source configured")
	}

	raw, err := s.fetcher.FetchQuestions(ctx, amount)
	if err != nil {
		return 0, err
	}

	categoryIDs := make(map[string]int)
	imported := 0
	for _, item := range raw {
		name := strings.TrimSpace(html.UnescapeString(item.Category))
		if name == "" {
			name = "General"
		}

		categoryID, ok := categoryIDs[name]
		if !ok {
			category, err := s.store.EnsureCategory(ctx, name)
			if err != nil {
				return imported, fmt.Errorf("ensure category %q: %w", name, err)
			}
			categoryID = category.ID
			categoryIDs[name] = categoryID
		}

		question := trivia.Question{
			Question:   html.UnescapeString(item.Question),
			Answer:     html.UnescapeString(item.CorrectAnswer),
			Category:   categoryID,
			Difficulty: Difficulty(item.Difficulty),
		}
		if err := s.store.CreateQuestion(ctx, &question); err != nil {
			return imported, fmt.Errorf("insert question: %w", err)
		}
		imported++

		s.logger.Debug("imported question",
			zap.Int("id", question.ID),
			zap.String("category", name),
		)
	}

	s.logger.Info("questions imported",
		zap.Int("requested", amount),
		zap.Int("imported", imported),
		zap.Int("categories", len(categoryIDs)),
	)
	return imported, nil
}

// Difficulty maps an OpenTriviaDB difficulty label onto the 1..3 scale.
func Difficulty(label string) int {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "medium":
		return 2
	case "hard":
		return 3
	default:
		return 1
	}
}
