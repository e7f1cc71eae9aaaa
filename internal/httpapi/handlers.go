package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia-api/internal/metrics"
	"trivia-api/internal/trivia"
)

func (a *API) HandleListCategories(c *gin.Context) {
	categories, err := a.service.ListCategories(c.Request.Context())
	if err != nil {
		a.failService(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, categoriesResponse{
		Success:    true,
		Categories: trivia.CategoryTypes(categories),
	})
}

func (a *API) HandleListQuestions(c *gin.Context) {
	page, categories, err := a.service.ListQuestions(c.Request.Context(), parsePageParam(c))
	if err != nil {
		a.failService(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, questionListResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
		Categories:     trivia.CategoryTypes(categories),
	})
}

func (a *API) HandleDeleteQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	if err := a.service.DeleteQuestion(c.Request.Context(), id); err != nil {
		a.failService(c, err, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, deleteResponse{
		Success: true,
		Deleted: id,
	})
}

func (a *API) HandleCreateQuestion(c *gin.Context) {
	var request createQuestionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		a.failRequest(c, bindError(err))
		return
	}

	id, err := a.service.CreateQuestion(c.Request.Context(), trivia.NewQuestion{
		Question:   *request.Question,
		Answer:     *request.Answer,
		Category:   int(*request.Category),
		Difficulty: int(*request.Difficulty),
	})
	if err != nil {
		a.failService(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, createResponse{
		Success: true,
		Created: id,
	})
}

func (a *API) HandleSearchQuestions(c *gin.Context) {
	var request searchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		a.failRequest(c, bindError(err))
		return
	}

	term := ""
	if request.SearchTerm != nil {
		term = *request.SearchTerm
	}

	page, err := a.service.SearchQuestions(c.Request.Context(), term, parsePageParam(c))
	if err != nil {
		a.failService(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, filteredQuestionsResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
	})
}

func (a *API) HandleCategoryQuestions(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "category_id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	page, category, err := a.service.QuestionsByCategory(c.Request.Context(), categoryID, parsePageParam(c))
	if err != nil {
		a.failService(c, err, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, filteredQuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.Total,
		CurrentCategory: &category.Type,
	})
}

func (a *API) HandleQuizQuestion(c *gin.Context) {
	categoryID, previous, err := decodeQuizRequest(c)
	if err != nil {
		a.failRequest(c, err)
		return
	}

	question, err := a.service.NextQuizQuestion(c.Request.Context(), categoryID, previous)
	if err != nil {
		// Every failure past request decoding is unprocessable for a draw.
		a.fail(c, http.StatusUnprocessableEntity, err)
		return
	}

	outcome := "question"
	if question == nil {
		outcome = "exhausted"
	}
	metrics.QuizDraws.WithLabelValues(outcome).Inc()

	c.JSON(http.StatusOK, quizResponse{
		Success:  true,
		Question: question,
	})
}

func (a *API) HandleHealth(c *gin.Context) {
	if a.store == nil {
		a.fail(c, http.StatusInternalServerError, errors.New("store is not configured"))
		return
	}
	if err := a.store.Ping(c.Request.Context()); err != nil {
		a.fail(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
