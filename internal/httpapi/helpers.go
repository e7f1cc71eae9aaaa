package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"trivia-api/internal/trivia"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// statusError carries the response status a request decoding failure maps to.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

func badRequest(err error) error {
	return &statusError{status: http.StatusBadRequest, err: err}
}

func unprocessable(err error) error {
	return &statusError{status: http.StatusUnprocessableEntity, err: err}
}

// abortWithError writes the uniform error envelope for status.
func abortWithError(c *gin.Context, status int) {
	message, ok := statusMessages[status]
	if !ok {
		message = strings.ToLower(http.StatusText(status))
	}
	c.AbortWithStatusJSON(status, errorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// fail logs server-side failures with their cause before answering with the
// envelope; the cause never reaches the client. Storage failures are logged
// whatever status they are answered with.
func (a *API) fail(c *gin.Context, status int, cause error) {
	if cause != nil && (status >= http.StatusUnprocessableEntity || errors.Is(cause, trivia.ErrStorage)) {
		a.logger.Error("request failed",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestIDFrom(c)),
			zap.Error(cause),
		)
	}
	abortWithError(c, status)
}

func (a *API) failRequest(c *gin.Context, err error) {
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		a.fail(c, statusErr.status, statusErr.err)
		return
	}
	a.fail(c, http.StatusBadRequest, err)
}

// failService maps domain errors: missing entities and empty pages are 404,
// storage failures get the handler's storageStatus.
func (a *API) failService(c *gin.Context, err error, storageStatus int) {
	switch {
	case errors.Is(err, trivia.ErrStorage):
		a.fail(c, storageStatus, err)
	case errors.Is(err, trivia.ErrQuestionNotFound),
		errors.Is(err, trivia.ErrCategoryNotFound),
		errors.Is(err, trivia.ErrEmptyPage):
		a.fail(c, http.StatusNotFound, err)
	default:
		a.fail(c, http.StatusInternalServerError, err)
	}
}

// bindError classifies a gin binding failure: unreadable JSON is a bad
// request, JSON that decodes but misses or mistypes fields is unprocessable.
func bindError(err error) error {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &validationErrs),
		errors.As(err, &typeErr),
		errors.Is(err, errNotAnInteger):
		return unprocessable(err)
	default:
		return badRequest(err)
	}
}

// parsePageParam reads the 1-based page query parameter; absent or
// non-numeric values mean the first page.
func parsePageParam(c *gin.Context) int {
	value := strings.TrimSpace(c.Query("page"))
	if value == "" {
		return 1
	}

	page, err := strconv.Atoi(value)
	if err != nil {
		return 1
	}
	return page
}

func parseIDParam(c *gin.Context, key string) (int, bool) {
	id, err := strconv.Atoi(c.Param(key))
	if err != nil {
		return 0, false
	}
	return id, true
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

func decodeQuizRequest(c *gin.Context) (int, []int, error) {
	var request quizRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		return 0, nil, badRequest(err)
	}
	if isNull(request.QuizCategory) {
		return 0, nil, badRequest(errors.New("quiz_category is required"))
	}

	var category quizCategory
	if err := json.Unmarshal(request.QuizCategory, &category); err != nil {
		return 0, nil, badRequest(err)
	}
	if isNull(category.ID) {
		return 0, nil, badRequest(errors.New("quiz_category.id is required"))
	}

	var categoryID FlexibleInt
	if err := json.Unmarshal(category.ID, &categoryID); err != nil {
		return 0, nil, unprocessable(err)
	}

	var previous []FlexibleInt
	if !isNull(request.PreviousQuestions) {
		if err := json.Unmarshal(request.PreviousQuestions, &previous); err != nil {
			return 0, nil, unprocessable(err)
		}
	}

	previousIDs := make([]int, 0, len(previous))
	for _, id := range previous {
		previousIDs = append(previousIDs, int(id))
	}
	return int(categoryID), previousIDs, nil
}
