package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, questionService: questionService}
}

// ListCategories godoc
// @Summary      List categories
// @Description  Map of category id to display label
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.CategoryMap(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// ListQuestionsByCategory godoc
// @Summary      List questions in a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListQuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound, nil)
		return
	}

	ctx := c.Request.Context()
	category, err := h.categoryService.GetCategory(ctx, uint(categoryID))
	if errors.Is(err, services.ErrCategoryNotFound) {
		abortWithError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	questions, err := h.questionService.GetQuestionsByCategory(ctx, category.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	formatted := models.FormatQuestions(questions)
	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       formatted,
		TotalQuestions:  len(formatted),
		CurrentCategory: &category.Type,
	})
}
