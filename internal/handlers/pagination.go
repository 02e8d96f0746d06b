package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const QuestionsPerPage = 10

// pageParam reads ?page=, falling back to 1 when absent or not an integer.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// paginate returns the page window of items. Pages start at 1; any page
// outside the list yields an empty window.
func paginate[T any](items []T, page int) []T {
	if page < 1 {
		return nil
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return nil
	}
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
