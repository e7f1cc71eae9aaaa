package sqlstore

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"trivia-api/internal/trivia"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *Store) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	questions := make([]trivia.Question, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, wrapError(err)
	}
	return questions, nil
}

func (s *Store) GetQuestion(ctx context.Context, id int) (trivia.Question, error) {
	var question trivia.Question
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trivia.Question{}, trivia.ErrQuestionNotFound
		}
		return trivia.Question{}, wrapError(err)
	}
	return question, nil
}

func (s *Store) CreateQuestion(ctx context.Context, question *trivia.Question) error {
	question.ID = 0
	return wrapError(s.db.WithContext(ctx).Create(question).Error)
}

func (s *Store) DeleteQuestion(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&trivia.Question{}, id)
	if result.Error != nil {
		return wrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return trivia.ErrQuestionNotFound
	}
	return nil
}

// SearchQuestions matches term as a literal, case-insensitive substring of
// the question text, ordered by id. PostgreSQL folds case with ILIKE. SQLite's
// LOWER only folds ASCII, so there the rows are filtered after loading.
func (s *Store) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	if s.driver == DriverPostgres {
		pattern := "%" + likeEscaper.Replace(term) + "%"

		questions := make([]trivia.Question, 0)
		err := s.db.WithContext(ctx).
			Where(`question ILIKE ? ESCAPE '\'`, pattern).
			Order("id ASC").
			Find(&questions).Error
		if err != nil {
			return nil, wrapError(err)
		}
		return questions, nil
	}

	all, err := s.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	questions := make([]trivia.Question, 0)
	for _, question := range all {
		if strings.Contains(strings.ToLower(question.Question), needle) {
			questions = append(questions, question)
		}
	}
	return questions, nil
}

func (s *Store) QuestionsByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	questions := make([]trivia.Question, 0)
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return questions, nil
}

func (s *Store) QuestionIDs(ctx context.Context, categoryID int) ([]int, error) {
	query := s.db.WithContext(ctx).Model(&trivia.Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}

	ids := make([]int, 0)
	if err := query.Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, wrapError(err)
	}
	return ids, nil
}
