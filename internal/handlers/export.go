package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"trivia-api/internal/models"

	"github.com/gin-gonic/gin"
)

type ExportResponse struct {
	Success        bool                       `json:"success" example:"true"`
	TotalQuestions int                        `json:"total_questions" example:"19"`
	Questions      []models.FormattedQuestion `json:"questions"`
}

var exportHeader = []string{"id", "question", "answer", "category", "difficulty"}

// ExportQuestions godoc
// @Summary      Export the question bank
// @Description  Every question as JSON (default) or as a CSV attachment
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Param        format query string false "json or csv" Enums(json, csv)
// @Success      200 {object} ExportResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		abortWithError(c, http.StatusBadRequest, nil)
		return
	}

	questions, err := h.questionService.ListQuestions(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	if format == "json" {
		c.JSON(http.StatusOK, ExportResponse{
			Success:        true,
			TotalQuestions: len(questions),
			Questions:      models.FormatQuestions(questions),
		})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="questions.csv"`)
	c.Status(http.StatusOK)

	rows := make([][]string, 0, len(questions)+1)
	rows = append(rows, exportHeader)
	for _, q := range questions {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(q.ID), 10),
			q.Question,
			q.Answer,
			strconv.FormatUint(uint64(q.Category), 10),
			strconv.Itoa(q.Difficulty),
		})
	}

	// headers are already sent, so a write failure can only be logged
	if err := csv.NewWriter(c.Writer).WriteAll(rows); err != nil {
		_ = c.Error(err)
	}
}
