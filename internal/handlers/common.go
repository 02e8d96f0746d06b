package handlers

import "trivia-api/internal/models"

// ErrorResponse is the envelope every failed request receives.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found!"`
}

type CategoriesResponse struct {
	Success    bool            `json:"success" example:"true"`
	Categories map[uint]string `json:"categories"`
}

type QuestionListResponse struct {
	Success         bool                       `json:"success" example:"true"`
	Questions       []models.FormattedQuestion `json:"questions"`
	TotalQuestions  int                        `json:"total_questions" example:"19"`
	CurrentCategory *string                    `json:"current_category"`
}

type PaginatedQuestionsResponse struct {
	Success         bool                       `json:"success" example:"true"`
	Questions       []models.FormattedQuestion `json:"questions"`
	TotalQuestions  int                        `json:"total_questions" example:"19"`
	CurrentCategory *string                    `json:"current_category"`
	Categories      map[uint]string            `json:"categories"`
}
