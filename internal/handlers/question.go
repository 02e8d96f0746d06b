package handlers

import (
	"net/http"
	"strconv"

	"trivia-api/internal/models"
	"trivia-api/internal/services"
	"trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	hub             *ws.Hub
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService, hub *ws.Hub) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, categoryService: categoryService, hub: hub}
}

// CreateQuestionRequest fields are all required; zero values count as missing.
type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required" example:"What day is Taco Tuesday?"`
	Answer     string `json:"answer" binding:"required" example:"Tuesday"`
	Category   uint   `json:"category" binding:"required" example:"3"`
	Difficulty int    `json:"difficulty" binding:"required" example:"2"`
}

type CreateQuestionResponse struct {
	Success    bool   `json:"success" example:"true"`
	Created    uint   `json:"created" example:"24"`
	Question   string `json:"question" example:"What day is Taco Tuesday?"`
	Answer     string `json:"answer" example:"Tuesday"`
	Category   uint   `json:"category" example:"3"`
	Difficulty int    `json:"difficulty" example:"2"`
}

type DeleteQuestionResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted uint `json:"deleted" example:"24"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" binding:"required" example:"title"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Ten questions per page plus the total count and every category
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} PaginatedQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questionService.ListQuestions(ctx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	current := paginate(questions, pageParam(c))
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound, nil)
		return
	}

	categories, err := h.categoryService.CategoryMap(ctx)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, PaginatedQuestionsResponse{
		Success:         true,
		Questions:       models.FormatQuestions(current),
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
		Categories:      categories,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound, nil)
		return
	}

	// every failure here, storage errors included, is reported as not found
	if err := h.questionService.DeleteQuestion(c.Request.Context(), uint(questionID)); err != nil {
		abortWithError(c, http.StatusNotFound, err)
		return
	}

	questionsDeleted.Inc()
	h.hub.Broadcast(ws.Message{Type: ws.EventQuestionDeleted, Data: gin.H{"id": questionID}})

	c.JSON(http.StatusOK, DeleteQuestionResponse{Success: true, Deleted: uint(questionID)})
}

// CreateQuestion godoc
// @Summary      Add a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} CreateQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	questionsCreated.Inc()
	h.hub.Broadcast(ws.Message{Type: ws.EventQuestionCreated, Data: question.Format()})

	c.JSON(http.StatusCreated, CreateQuestionResponse{
		Success:    true,
		Created:    question.ID,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} QuestionListResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	questions, err := h.questionService.SearchQuestions(c.Request.Context(), req.SearchTerm)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	formatted := models.FormatQuestions(questions)
	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       formatted,
		TotalQuestions:  len(formatted),
		CurrentCategory: nil,
	})
}
