package trivia

import (
	"context"
	"errors"
	"math/rand"
)

type Service struct {
	categories CategoryRepository
	questions  QuestionRepository
	pick       func(n int) int
}

func NewService(categories CategoryRepository, questions QuestionRepository) *Service {
	return &Service{
		categories: categories,
		questions:  questions,
		pick:       rand.Intn,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.categories.ListCategories(ctx)
}

// ListQuestions returns the requested page of all questions ordered by id
// together with every category. An empty page is reported as ErrEmptyPage.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, []Category, error) {
	selection, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return QuestionPage{}, nil, err
	}

	current := Paginate(selection, page)
	if len(current) == 0 {
		return QuestionPage{}, nil, ErrEmptyPage
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return QuestionPage{}, nil, err
	}

	return QuestionPage{Questions: current, Total: len(selection)}, categories, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questions.GetQuestion(ctx, id); err != nil {
		return err
	}
	return s.questions.DeleteQuestion(ctx, id)
}

func (s *Service) CreateQuestion(ctx context.Context, input NewQuestion) (int, error) {
	question := Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.questions.CreateQuestion(ctx, &question); err != nil {
		return 0, err
	}
	return question.ID, nil
}

// SearchQuestions pages through the questions whose text contains term,
// ignoring case. Total is the unpaginated match count; an empty result is
// not an error.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	selection, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{Questions: Paginate(selection, page), Total: len(selection)}, nil
}

func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (QuestionPage, Category, error) {
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, Category{}, err
	}

	selection, err := s.questions.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, Category{}, err
	}

	current := Paginate(selection, page)
	if len(current) == 0 {
		return QuestionPage{}, Category{}, ErrEmptyPage
	}

	return QuestionPage{Questions: current, Total: len(selection)}, category, nil
}

// NextQuizQuestion draws a question uniformly at random from the candidate
// pool (every question when categoryID is 0) minus the previous ids. A nil
// question with a nil error means the quiz is exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*Question, error) {
	candidates, err := s.questions.QuestionIDs(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]int, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := seen[id]; ok {
			continue
		}
		remaining = append(remaining, id)
	}
	if len(remaining) == 0 {
		return nil, nil
	}

	question, err := s.questions.GetQuestion(ctx, remaining[s.pick(len(remaining))])
	if err != nil {
		// A concurrent delete between listing and fetching surfaces as a
		// storage-level failure for this draw.
		if errors.Is(err, ErrQuestionNotFound) {
			return nil, errors.Join(ErrStorage, err)
		}
		return nil, err
	}
	return &question, nil
}
