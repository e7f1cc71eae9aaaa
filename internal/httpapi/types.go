package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"trivia-api/internal/trivia"
)

var errNotAnInteger = errors.New("value is not an integer")

// FlexibleInt decodes from a JSON integer or from a string holding one;
// clients send category ids both ways.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return errNotAnInteger
		}
		data = []byte(strings.TrimSpace(text))
	}

	value, err := strconv.Atoi(string(data))
	if err != nil {
		return errNotAnInteger
	}
	*f = FlexibleInt(value)
	return nil
}

type createQuestionRequest struct {
	Question   *string      `json:"question" binding:"required"`
	Answer     *string      `json:"answer" binding:"required"`
	Category   *FlexibleInt `json:"category" binding:"required"`
	Difficulty *FlexibleInt `json:"difficulty" binding:"required"`
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// quizRequest is decoded in stages so a missing quiz_category (400) can be
// told apart from a malformed id (422).
type quizRequest struct {
	QuizCategory      json.RawMessage `json:"quiz_category"`
	PreviousQuestions json.RawMessage `json:"previous_questions"`
}

type quizCategory struct {
	ID json.RawMessage `json:"id"`
}

type categoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

type questionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []trivia.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[int]string    `json:"categories"`
	CurrentCategory *string           `json:"current_category"`
}

type filteredQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []trivia.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *string           `json:"current_category"`
}

type deleteResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

type createResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

type quizResponse struct {
	Success  bool             `json:"success"`
	Question *trivia.Question `json:"question"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
