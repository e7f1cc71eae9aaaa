package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trivia-api/internal/trivia"
)

func (s *Store) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	categories := make([]trivia.Category, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, wrapError(err)
	}
	return categories, nil
}

func (s *Store) GetCategory(ctx context.Context, id int) (trivia.Category, error) {
	var category trivia.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trivia.Category{}, trivia.ErrCategoryNotFound
		}
		return trivia.Category{}, wrapError(err)
	}
	return category, nil
}

// EnsureCategory returns the category labelled categoryType, creating it
// when missing.
func (s *Store) EnsureCategory(ctx context.Context, categoryType string) (trivia.Category, error) {
	var category trivia.Category
	err := s.db.WithContext(ctx).
		Where(trivia.Category{Type: categoryType}).
		FirstOrCreate(&category).Error
	if err != nil {
		return trivia.Category{}, wrapError(err)
	}
	return category, nil
}
