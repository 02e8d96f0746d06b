package handlers

import (
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type QuizCategory struct {
	ID   *uint  `json:"id" binding:"required" example:"1"`
	Type string `json:"type,omitempty" example:"Science"`
}

type PlayQuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
	PreviousQuestions []uint        `json:"previous_questions" binding:"required"`
}

type PlayQuizResponse struct {
	Success  bool                      `json:"success" example:"true"`
	Question *models.FormattedQuestion `json:"question"`
}

// PlayQuiz godoc
// @Summary      Next quiz question
// @Description  Random question from the category (id 0 for all) that is not in previous_questions. question is null once none remain.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body PlayQuizRequest true "Quiz state"
// @Success      200 {object} PlayQuizResponse
// @Failure      400 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	// storage failures are reported as bad requests too
	question, err := h.quizService.NextQuestion(c.Request.Context(), *req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	resp := PlayQuizResponse{Success: true}
	if question != nil {
		formatted := question.Format()
		resp.Question = &formatted
		quizPicks.WithLabelValues("question").Inc()
	} else {
		quizPicks.WithLabelValues("exhausted").Inc()
	}

	c.JSON(http.StatusOK, resp)
}
